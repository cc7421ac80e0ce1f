package tracker

import (
	"testing"
	"time"

	"github.com/aldas/go-ais-client/ais"
	"github.com/stretchr/testify/assert"
)

func posMsg(mmsi string) *ais.Message {
	m := ais.NewMessage(1)
	m.MMSI = mmsi
	m.Set(ais.UintValue("lat_field_marker", 1))
	return m
}

func TestTracker_Update_CreatesThenUpdates(t *testing.T) {
	var events []Event
	tr := New(Config{
		OnEvent: func(e Event) { events = append(events, e) },
	})

	t0 := time.Unix(1000, 0).UTC()
	tr.Update(posMsg("123456789"), t0)

	track, ok := tr.Get("123456789")
	assert.True(t, ok)
	assert.Equal(t, "123456789", track.MMSI)
	assert.Equal(t, t0, track.FirstSeen)
	assert.Equal(t, t0, track.LastSeen)
	assert.Equal(t, 1, track.UpdateCount)
	assert.Equal(t, 1, tr.Len())

	require_ := assert.New(t)
	require_.Len(events, 1)
	require_.Equal(EventCreated, events[0].Type)

	t1 := t0.Add(5 * time.Second)
	tr.Update(posMsg("123456789"), t1)

	track, ok = tr.Get("123456789")
	assert.True(t, ok)
	assert.Equal(t, t0, track.FirstSeen, "first seen must not change on update")
	assert.Equal(t, t1, track.LastSeen)
	assert.Equal(t, 2, track.UpdateCount)

	require_.Len(events, 2)
	require_.Equal(EventUpdated, events[1].Type)
}

func TestTracker_Update_IgnoresMessageWithoutMMSI(t *testing.T) {
	tr := New(Config{})
	m := ais.NewMessage(1)
	tr.Update(m, time.Unix(0, 0))
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_Update_MergesFieldsAcrossMessageTypes(t *testing.T) {
	tr := New(Config{})
	t0 := time.Unix(0, 0)

	position := ais.NewMessage(1)
	position.MMSI = "111222333"
	position.Set(ais.FloatValue("sog", 12.3))
	tr.Update(position, t0)

	static := ais.NewMessage(5)
	static.MMSI = "111222333"
	static.Set(ais.StringValue("shipname", "NORTHERN STAR"))
	tr.Update(static, t0.Add(time.Minute))

	track, ok := tr.Get("111222333")
	assert.True(t, ok)
	assert.Contains(t, track.Fields, "sog")
	assert.Contains(t, track.Fields, "shipname")
	assert.Equal(t, "NORTHERN STAR", track.Fields["shipname"].Str)
}

func TestTracker_Cleanup_FiresDeletedAfterTTL(t *testing.T) {
	var events []Event
	tr := New(Config{
		TTL:     time.Minute,
		OnEvent: func(e Event) { events = append(events, e) },
	})
	t0 := time.Unix(0, 0)
	tr.Update(posMsg("999"), t0)
	assert.Equal(t, 1, tr.Len())

	tr.Cleanup(t0.Add(30 * time.Second))
	assert.Equal(t, 1, tr.Len(), "not yet stale")

	tr.Cleanup(t0.Add(2 * time.Minute))
	assert.Equal(t, 0, tr.Len(), "stale track must be pruned")

	var sawDeleted bool
	for _, e := range events {
		if e.Type == EventDeleted {
			sawDeleted = true
			assert.Equal(t, "999", e.Track.MMSI)
		}
	}
	assert.True(t, sawDeleted)
}

func TestTracker_OnEvent_PanicDoesNotCorruptState(t *testing.T) {
	tr := New(Config{
		OnEvent: func(e Event) { panic("boom") },
	})
	assert.NotPanics(t, func() {
		tr.Update(posMsg("555"), time.Unix(0, 0))
	})
	_, ok := tr.Get("555")
	assert.True(t, ok)
}

func TestTracker_NLatest_Unordered(t *testing.T) {
	tr := New(Config{})
	base := time.Unix(1_000_000, 0)
	for i := 0; i < 20; i++ {
		mmsi := mmsiOf(i)
		tr.Update(posMsg(mmsi), base.Add(time.Duration(i)*time.Second))
	}

	latest := tr.NLatest(5)
	assert.Len(t, latest, 5)
	assert.Equal(t, mmsiOf(19), latest[0].MMSI, "most recently seen first")
	assert.Equal(t, mmsiOf(15), latest[4].MMSI)
}

func TestTracker_NLatest_Ordered(t *testing.T) {
	tr := New(Config{Ordered: true})
	base := time.Unix(1_000_000, 0)
	for i := 0; i < 20; i++ {
		tr.Update(posMsg(mmsiOf(i)), base.Add(time.Duration(i)*time.Second))
	}

	latest := tr.NLatest(5)
	assert.Len(t, latest, 5)
	assert.Equal(t, mmsiOf(19), latest[0].MMSI)
	assert.Equal(t, mmsiOf(15), latest[4].MMSI)
}

func TestTracker_NLatest_OrderedAndUnordered_Agree(t *testing.T) {
	base := time.Unix(2_000_000, 0)
	n := 1000

	ordered := New(Config{Ordered: true})
	unordered := New(Config{})
	for i := 0; i < n; i++ {
		mmsi := mmsiOf(i)
		ts := base.Add(time.Duration(i) * time.Second)
		ordered.Update(posMsg(mmsi), ts)
		unordered.Update(posMsg(mmsi), ts)
	}

	orderedLatest := ordered.NLatest(10)
	unorderedLatest := unordered.NLatest(10)
	assert.Len(t, orderedLatest, 10)
	assert.Len(t, unorderedLatest, 10)
	for i := range orderedLatest {
		assert.Equal(t, orderedLatest[i].MMSI, unorderedLatest[i].MMSI)
	}
}

func TestTracker_NLatest_KGreaterThanLen(t *testing.T) {
	tr := New(Config{})
	tr.Update(posMsg("1"), time.Unix(0, 0))
	tr.Update(posMsg("2"), time.Unix(1, 0))

	assert.Len(t, tr.NLatest(50), 2)
	assert.Nil(t, tr.NLatest(0))
}

func mmsiOf(i int) string {
	digits := "000000000"
	s := digits + itoa(i)
	return s[len(s)-9:]
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}
