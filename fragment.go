package aisnmea

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxInFlightGroups is the default maximum number of concurrently
// in-progress fragment groups the FragmentAssembler will hold before
// evicting the oldest one.
const DefaultMaxInFlightGroups = 10000

// AssembledMessage is the result of reassembling one or more Sentence
// fragments into a single logical AIS payload.
type AssembledMessage struct {
	// AssemblyID correlates this assembly across logs, minted the way
	// vision3 mints session ids with uuid.New() - purely a diagnostic
	// handle, never used for keying or equality.
	AssemblyID uuid.UUID

	Payload   string
	FillBits  uint8
	Channel   string
	Sentences []*Sentence
	Gatehouse *GatehouseInfo
}

type fragmentKey struct {
	sequenceID int
	channel    string
}

// fragmentGroup mirrors go-nmea-client's fastPacketSequence: a set of
// slots for an in-progress multi-part message, filled as fragments
// arrive in any order.
type fragmentGroup struct {
	key       fragmentKey
	slots     []*Sentence
	filled    int
	gatehouse *GatehouseInfo
	arrival   uint64
}

func (g *fragmentGroup) add(s *Sentence) {
	idx := s.FragmentIndex - 1
	if g.slots[idx] == nil {
		g.filled++
	}
	g.slots[idx] = s
	if g.gatehouse == nil && s.Gatehouse != nil {
		g.gatehouse = s.Gatehouse
	}
}

func (g *fragmentGroup) isComplete() bool {
	return g.filled == len(g.slots)
}

func (g *fragmentGroup) assemble() (*AssembledMessage, error) {
	var payload string
	for _, s := range g.slots {
		payload += s.Payload
	}
	last := g.slots[len(g.slots)-1]
	if payload == "" {
		return nil, ErrMissingPayload
	}
	return &AssembledMessage{
		AssemblyID: uuid.New(),
		Payload:    payload,
		FillBits:   last.FillBits,
		Channel:    g.key.channel,
		Sentences:  append([]*Sentence(nil), g.slots...),
		Gatehouse:  g.gatehouse,
	}, nil
}

// FragmentAssembler reassembles multi-fragment AIVDM/AIVDO sentences
// arriving from a single stream, grounded on go-nmea-client's
// FastPacketAssembler (fastpacket.go): a pool of slot-tables keyed by
// group identity, with FIFO eviction bounding memory under lossy input.
// A FragmentAssembler must be owned exclusively by one stream; two
// streams must each instantiate their own. Like the rest
// of the core pipeline it is single-threaded and cooperative and holds
// no internal lock - callers needing concurrent access must serialize
// their own calls.
type FragmentAssembler struct {
	maxInFlight int

	groups  map[fragmentKey]*fragmentGroup
	fifo    []fragmentKey
	arrival uint64
}

// NewFragmentAssembler creates an assembler with DefaultMaxInFlightGroups.
func NewFragmentAssembler() *FragmentAssembler {
	return NewFragmentAssemblerWithCapacity(DefaultMaxInFlightGroups)
}

// NewFragmentAssemblerWithCapacity creates an assembler bounding itself to
// maxInFlight concurrently in-progress groups.
func NewFragmentAssemblerWithCapacity(maxInFlight int) *FragmentAssembler {
	return &FragmentAssembler{
		maxInFlight: maxInFlight,
		groups:      make(map[fragmentKey]*fragmentGroup),
	}
}

// Add feeds one sentence into the assembler. It returns a non-nil
// AssembledMessage when the sentence completes a group (or is itself a
// single-fragment sentence).
func (a *FragmentAssembler) Add(s *Sentence) (*AssembledMessage, error) {
	if s.FragmentCount <= 1 {
		if s.Payload == "" {
			return nil, ErrMissingPayload
		}
		return &AssembledMessage{
			AssemblyID: uuid.New(),
			Payload:    s.Payload,
			FillBits:   s.FillBits,
			Channel:    s.Channel,
			Sentences:  []*Sentence{s},
			Gatehouse:  s.Gatehouse,
		}, nil
	}

	key := fragmentKey{sequenceID: s.SequenceID, channel: s.Channel}
	g, ok := a.groups[key]
	if !ok {
		if len(a.groups) >= a.maxInFlight {
			a.evictOldestLocked()
		}
		g = &fragmentGroup{key: key, slots: make([]*Sentence, s.FragmentCount), arrival: a.arrival}
		a.arrival++
		a.groups[key] = g
		a.fifo = append(a.fifo, key)
	}
	// duplicate fragment arrival with a different payload silently
	// replaces the earlier slot value; see DESIGN.md for the rationale.
	g.add(s)

	if !g.isComplete() {
		return nil, nil
	}
	delete(a.groups, key)
	a.removeFromFIFOLocked(key)
	return g.assemble()
}

func (a *FragmentAssembler) evictOldestLocked() {
	if len(a.fifo) == 0 {
		return
	}
	oldest := a.fifo[0]
	a.fifo = a.fifo[1:]
	delete(a.groups, oldest)
}

func (a *FragmentAssembler) removeFromFIFOLocked(key fragmentKey) {
	for i, k := range a.fifo {
		if k == key {
			a.fifo = append(a.fifo[:i], a.fifo[i+1:]...)
			return
		}
	}
}

// Reset discards all in-flight fragment groups, used when a stream's
// cooperative close signal fires. It returns one ErrMissingMultipartMessage
// per discarded group that never received all of its fragments, so a
// caller shutting down a stream can log what was dropped.
func (a *FragmentAssembler) Reset() []error {
	var errs []error
	for _, g := range a.groups {
		if !g.isComplete() {
			errs = append(errs, fmt.Errorf("%w: sequence %d channel %q (%d/%d fragments received)",
				ErrMissingMultipartMessage, g.key.sequenceID, g.key.channel, g.filled, len(g.slots)))
		}
	}
	a.groups = make(map[fragmentKey]*fragmentGroup)
	a.fifo = nil
	return errs
}

// InFlightCount reports the number of fragment groups currently buffered.
func (a *FragmentAssembler) InFlightCount() int {
	return len(a.groups)
}

// TagBlockGrouper collects sentences tagged with a `g:n/N/id` tag block
// field by group id, independent of AIS fragment reassembly. Shaped like FragmentAssembler but keyed by
// the tag block group id instead of (sequenceID, channel); equally
// single-threaded and lock-free.
type TagBlockGrouper struct {
	groups map[string][]*Sentence
	totals map[string]int
}

// NewTagBlockGrouper creates an empty TagBlockGrouper.
func NewTagBlockGrouper() *TagBlockGrouper {
	return &TagBlockGrouper{
		groups: make(map[string][]*Sentence),
		totals: make(map[string]int),
	}
}

// Add feeds one tag-block-grouped sentence in. It returns the full
// ordered list of N sentences once every member of the group has arrived.
func (g *TagBlockGrouper) Add(s *Sentence) []*Sentence {
	if s.TagBlock == nil || !s.TagBlock.HasGroup {
		return nil
	}
	group := s.TagBlock.Group
	id := group.GroupID
	slots, ok := g.groups[id]
	if !ok {
		slots = make([]*Sentence, group.Total)
		g.groups[id] = slots
		g.totals[id] = group.Total
	}
	if group.SentenceNum >= 1 && group.SentenceNum <= len(slots) {
		slots[group.SentenceNum-1] = s
	}

	for _, slot := range slots {
		if slot == nil {
			return nil
		}
	}
	delete(g.groups, id)
	delete(g.totals, id)
	return slots
}
