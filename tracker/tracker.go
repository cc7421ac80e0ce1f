// Package tracker maintains per-vessel state from a stream of decoded
// AIS messages, the domain equivalent of Regentag-go1090's in-memory
// Sky of Aircraft: a map keyed by station id, pruned by a last-seen
// TTL, with create/update/delete events delivered to registered
// callbacks.
package tracker

import (
	"sort"
	"time"

	"github.com/aldas/go-ais-client/ais"
	gocache "github.com/patrickmn/go-cache"
)

// EventType identifies a Track lifecycle transition.
type EventType uint8

const (
	EventCreated EventType = iota
	EventUpdated
	EventDeleted
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "CREATED"
	case EventUpdated:
		return "UPDATED"
	case EventDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// Track is a vessel's merged latest-known state, a value copy handed
// to callbacks so they cannot mutate the tracker's own state.
type Track struct {
	MMSI        string
	FirstSeen   time.Time
	LastSeen    time.Time
	UpdateCount int

	// Fields holds the latest value seen for every named field across
	// all messages this MMSI has sent, merged message-over-message
	// rather than replaced wholesale, since a type 5 static report and a type 1 position
	// report about the same vessel each carry disjoint fields.
	Fields map[string]ais.Value
}

// Event is delivered synchronously to every registered callback on a
// Track's creation, update, or TTL/prune-triggered deletion.
type Event struct {
	Type  EventType
	Track Track
}

// DefaultTTL is how long a track survives without a new message before
// Cleanup (or the cache's own janitor) deletes it.
const DefaultTTL = 10 * time.Minute

// Config controls a Tracker's TTL bookkeeping strategy and event delivery.
type Config struct {
	// TTL is how long a track may go unseen before it is stale. Zero
	// means DefaultTTL.
	TTL time.Duration

	// Ordered, when true, declares that Update will be called with
	// messages in non-decreasing observation time: NLatest can then run
	// in O(k) instead of O(N log N). Cleanup visits every track in
	// either mode.
	Ordered bool

	// OnEvent is invoked for every CREATED/UPDATED/DELETED transition.
	// A panic or error inside OnEvent must not corrupt tracker state;
	// Update recovers from it and the tracker continues.
	OnEvent func(Event)

	// Now defaults to time.Now when unset. Update and Cleanup do not
	// consult it: they take their times as arguments.
	Now func() time.Time
}

// Tracker aggregates per-MMSI vessel state from a stream of decoded
// messages. It is single-threaded and cooperative like the rest of the
// core pipeline and holds no internal lock; callers
// needing concurrent access must serialize their own calls.
type Tracker struct {
	cfg   Config
	cache *gocache.Cache

	// order is the MMSI list used when cfg.Ordered is true, oldest
	// LastSeen first: Update moves the updated MMSI to the end
	// (observation times are assumed non-decreasing), NLatest reads from
	// that end without a sort, and Cleanup drops expired MMSIs from it.
	order []string
}

// New creates a Tracker. The underlying go-cache instance's own
// janitor goroutine independently expires stale entries on cfg.TTL;
// Cleanup additionally lets a caller force a synchronous sweep (e.g.
// right before NLatest, or on shutdown) and fires DELETED events that
// go-cache's own expiration would otherwise drop silently.
func New(cfg Config) *Tracker {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	t := &Tracker{
		cfg:   cfg,
		cache: gocache.New(cfg.TTL, cfg.TTL/2),
	}
	return t
}

// Update applies one decoded message to its track, creating the track
// on first observation and merging fields into it thereafter. t is the
// message's observation time (the time it was read off the wire, not a
// field within the message itself).
func (tr *Tracker) Update(msg *ais.Message, t time.Time) {
	if msg == nil || msg.MMSI == "" {
		return
	}

	existing, found := tr.get(msg.MMSI)
	eventType := EventUpdated
	track := existing
	if !found {
		eventType = EventCreated
		track = Track{MMSI: msg.MMSI, FirstSeen: t, Fields: make(map[string]ais.Value)}
	}
	track.LastSeen = t
	track.UpdateCount++
	for _, v := range msg.Values {
		track.Fields[v.Name] = v
	}

	tr.cache.SetDefault(msg.MMSI, track)
	if tr.cfg.Ordered {
		for i, mmsi := range tr.order {
			if mmsi == msg.MMSI {
				tr.order = append(tr.order[:i], tr.order[i+1:]...)
				break
			}
		}
		tr.order = append(tr.order, msg.MMSI)
	}
	tr.fire(Event{Type: eventType, Track: track})
}

// Get returns the current track for mmsi, if any.
func (tr *Tracker) Get(mmsi string) (Track, bool) {
	return tr.get(mmsi)
}

func (tr *Tracker) get(mmsi string) (Track, bool) {
	v, ok := tr.cache.Get(mmsi)
	if !ok {
		return Track{}, false
	}
	return v.(Track), true
}

// Len reports the number of tracks currently held.
func (tr *Tracker) Len() int {
	return tr.cache.ItemCount()
}

// NLatest returns up to k tracks with the highest LastSeen. In ordered
// mode this runs in O(k), reading from the tail of the LastSeen-ordered
// index; in unordered mode it collects and sorts every live track,
// O(N log N).
func (tr *Tracker) NLatest(k int) []Track {
	if k <= 0 {
		return nil
	}
	if tr.cfg.Ordered {
		return tr.nLatestOrdered(k)
	}
	return tr.nLatestUnordered(k)
}

func (tr *Tracker) nLatestOrdered(k int) []Track {
	result := make([]Track, 0, k)
	for i := len(tr.order) - 1; i >= 0 && len(result) < k; i-- {
		if track, ok := tr.get(tr.order[i]); ok {
			result = append(result, track)
		}
	}
	return result
}

func (tr *Tracker) nLatestUnordered(k int) []Track {
	all := make([]Track, 0, tr.cache.ItemCount())
	for _, item := range tr.cache.Items() {
		all = append(all, item.Object.(Track))
	}
	sortTracksByLastSeenDesc(all)
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

func sortTracksByLastSeenDesc(tracks []Track) {
	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].LastSeen.After(tracks[j].LastSeen)
	})
}

// Cleanup removes every track whose LastSeen is older than now minus
// the configured TTL, firing a DELETED event for each, then compacts
// the ordered index if in ordered mode. Safe to call even though
// go-cache's own janitor also expires entries in the background; this
// is the only path that fires DELETED events, since go-cache's
// OnEvicted callback fires from the janitor goroutine and would
// violate the single-threaded cooperative contract.
func (tr *Tracker) Cleanup(now time.Time) {
	var alive []string
	for mmsi, item := range tr.cache.Items() {
		track := item.Object.(Track)
		if now.Sub(track.LastSeen) > tr.cfg.TTL {
			tr.cache.Delete(mmsi)
			tr.fire(Event{Type: EventDeleted, Track: track})
			continue
		}
		alive = append(alive, mmsi)
	}
	if tr.cfg.Ordered {
		tr.order = tr.compactOrder(alive)
	}
}

func (tr *Tracker) compactOrder(alive []string) []string {
	aliveSet := make(map[string]struct{}, len(alive))
	for _, mmsi := range alive {
		aliveSet[mmsi] = struct{}{}
	}
	compacted := tr.order[:0]
	for _, mmsi := range tr.order {
		if _, ok := aliveSet[mmsi]; ok {
			compacted = append(compacted, mmsi)
		}
	}
	return compacted
}

func (tr *Tracker) fire(ev Event) {
	if tr.cfg.OnEvent == nil {
		return
	}
	defer func() {
		_ = recover() // an OnEvent panic must not corrupt tracker state
	}()
	// hand the callback its own Fields map so it cannot mutate the
	// stored track through it
	fields := make(map[string]ais.Value, len(ev.Track.Fields))
	for name, v := range ev.Track.Fields {
		fields[name] = v
	}
	ev.Track.Fields = fields
	tr.cfg.OnEvent(ev)
}
