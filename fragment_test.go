package aisnmea

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFragmentSentences() (first, second *Sentence) {
	first = &Sentence{
		FragmentCount: 2, FragmentIndex: 1, SequenceID: 5, HasSequenceID: true,
		Channel: "A", Payload: "AB", FillBits: 0, IsValid: true,
	}
	second = &Sentence{
		FragmentCount: 2, FragmentIndex: 2, SequenceID: 5, HasSequenceID: true,
		Channel: "A", Payload: "CD", FillBits: 0, IsValid: true,
	}
	return first, second
}

// TestFragmentAssembler_Add_ReassemblyIsOrderIndependent is the
// reassembly invariant: feeding the same group's fragments in either
// arrival order must produce an identical assembled payload.
func TestFragmentAssembler_Add_ReassemblyIsOrderIndependent(t *testing.T) {
	first, second := twoFragmentSentences()

	forward := NewFragmentAssembler()
	msg, err := forward.Add(first)
	require.NoError(t, err)
	assert.Nil(t, msg, "group incomplete after first fragment")
	msg, err = forward.Add(second)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "ABCD", msg.Payload)

	reverse := NewFragmentAssembler()
	msg2, err := reverse.Add(second)
	require.NoError(t, err)
	assert.Nil(t, msg2)
	msg2, err = reverse.Add(first)
	require.NoError(t, err)
	require.NotNil(t, msg2)
	assert.Equal(t, "ABCD", msg2.Payload)

	assert.Equal(t, msg.Payload, msg2.Payload)
	assert.Equal(t, msg.FillBits, msg2.FillBits)
	assert.Equal(t, msg.Channel, msg2.Channel)
}

func TestFragmentAssembler_Add_SingleFragmentFastPath(t *testing.T) {
	a := NewFragmentAssembler()
	s := &Sentence{FragmentCount: 1, FragmentIndex: 1, Channel: "A", Payload: "AB", IsValid: true}

	msg, err := a.Add(s)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "AB", msg.Payload)
	assert.Equal(t, 0, a.InFlightCount())
}

func TestFragmentAssembler_Add_RejectsEmptySingleFragmentPayload(t *testing.T) {
	a := NewFragmentAssembler()
	s := &Sentence{FragmentCount: 1, FragmentIndex: 1, Channel: "A", Payload: ""}

	_, err := a.Add(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestFragmentAssembler_Add_EvictsOldestWhenFull(t *testing.T) {
	a := NewFragmentAssemblerWithCapacity(1)

	first := &Sentence{FragmentCount: 2, FragmentIndex: 1, SequenceID: 1, Channel: "A", Payload: "AA"}
	msg, err := a.Add(first)
	require.NoError(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, 1, a.InFlightCount())

	// a second, distinct in-progress group forces the first (incomplete)
	// group out under the FIFO eviction policy before it ever completes.
	second := &Sentence{FragmentCount: 2, FragmentIndex: 1, SequenceID: 2, Channel: "A", Payload: "BB"}
	msg, err = a.Add(second)
	require.NoError(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, 1, a.InFlightCount())

	// completing sequence 1 now fails to reassemble anything because its
	// group was evicted; Add treats it as a fresh, still-incomplete group.
	firstTail := &Sentence{FragmentCount: 2, FragmentIndex: 2, SequenceID: 1, Channel: "A", Payload: "XX"}
	msg, err = a.Add(firstTail)
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestFragmentAssembler_Reset_ReportsIncompleteGroupsOnly(t *testing.T) {
	a := NewFragmentAssembler()

	first, _ := twoFragmentSentences() // leave group 5 incomplete
	_, err := a.Add(first)
	require.NoError(t, err)

	other := &Sentence{FragmentCount: 2, FragmentIndex: 1, SequenceID: 9, Channel: "B", Payload: "Z"}
	_, err = a.Add(other)
	require.NoError(t, err)

	errs := a.Reset()
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.True(t, errors.Is(e, ErrMissingMultipartMessage))
	}
	assert.Equal(t, 0, a.InFlightCount())
}

func TestFragmentAssembler_Reset_NoErrorsWhenNothingInFlight(t *testing.T) {
	a := NewFragmentAssembler()
	assert.Empty(t, a.Reset())
}

func TestTagBlockGrouper_Add_CollectsFullGroup(t *testing.T) {
	g := NewTagBlockGrouper()

	s1 := &Sentence{TagBlock: &TagBlock{HasGroup: true, Group: TagBlockGroup{SentenceNum: 1, Total: 2, GroupID: "42"}}}
	s2 := &Sentence{TagBlock: &TagBlock{HasGroup: true, Group: TagBlockGroup{SentenceNum: 2, Total: 2, GroupID: "42"}}}

	out := g.Add(s1)
	assert.Nil(t, out, "group incomplete after first member")

	out = g.Add(s2)
	require.Len(t, out, 2)
	assert.Same(t, s1, out[0])
	assert.Same(t, s2, out[1])
}

func TestTagBlockGrouper_Add_IgnoresSentenceWithoutGroup(t *testing.T) {
	g := NewTagBlockGrouper()
	s := &Sentence{TagBlock: &TagBlock{HasGroup: false}}
	assert.Nil(t, g.Add(s))

	s2 := &Sentence{}
	assert.Nil(t, g.Add(s2))
}
