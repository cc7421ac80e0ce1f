package filter

import (
	"testing"

	"github.com/aldas/go-ais-client/ais"
	"github.com/stretchr/testify/assert"
)

func withPosition(msgType int, lat, lon float64) *ais.Message {
	m := ais.NewMessage(msgType)
	m.Set(ais.FloatValue("lat", lat))
	m.Set(ais.FloatValue("lon", lon))
	return m
}

func TestMessageTypeFilter(t *testing.T) {
	f := MessageTypeFilter(1, 3)
	assert.True(t, f.Match(withPosition(1, 0, 0)))
	assert.True(t, f.Match(withPosition(3, 0, 0)))
	assert.False(t, f.Match(withPosition(5, 0, 0)))
}

func TestNoneFilter(t *testing.T) {
	m := ais.NewMessage(1)
	m.Set(ais.StringValue("shipname", "ORION"))

	assert.True(t, NoneFilter("shipname").Match(m))
	assert.False(t, NoneFilter("shipname", "callsign").Match(m), "callsign absent")
}

func TestNoneFilter_UnavailableSentinelDoesNotPass(t *testing.T) {
	m := ais.NewMessage(1)
	m.Set(ais.Value{Name: "heading", Kind: ais.KindUint, Uint: 511, Available: false})

	assert.False(t, NoneFilter("heading").Match(m))
}

func TestDistanceFilter(t *testing.T) {
	// San Francisco to Oakland is roughly 13 km.
	sf := withPosition(1, 37.7749, -122.4194)
	f := DistanceFilter(37.8044, -122.2712, 20)
	assert.True(t, f.Match(sf))

	farAway := withPosition(1, 51.5074, -0.1278) // London
	assert.False(t, f.Match(farAway))
}

func TestDistanceFilter_NoPositionNeverMatches(t *testing.T) {
	m := ais.NewMessage(5)
	f := DistanceFilter(0, 0, 1000000)
	assert.False(t, f.Match(m))
}

func TestGridFilter(t *testing.T) {
	f := GridFilter(37.0, -123.0, 38.0, -122.0)
	assert.True(t, f.Match(withPosition(1, 37.5, -122.5)))
	assert.False(t, f.Match(withPosition(1, 40.0, -122.5)))
	assert.False(t, f.Match(withPosition(1, 37.5, -121.0)))
}

func TestChain_PassesOnlyWhenAllFiltersPass(t *testing.T) {
	chain := NewChain(
		MessageTypeFilter(1, 2, 3),
		GridFilter(37.0, -123.0, 38.0, -122.0),
	)

	inGrid := withPosition(1, 37.5, -122.5)
	outGrid := withPosition(1, 40.0, -122.5)
	wrongType := withPosition(5, 37.5, -122.5)

	assert.True(t, chain.Match(inGrid))
	assert.False(t, chain.Match(outGrid))
	assert.False(t, chain.Match(wrongType))

	result := chain.Apply([]*ais.Message{inGrid, outGrid, wrongType})
	assert.Equal(t, []*ais.Message{inGrid}, result)
}

func TestAttributeFilter(t *testing.T) {
	isClassA := AttributeFilter(func(msg *ais.Message) bool {
		return msg.Type == 1 || msg.Type == 2 || msg.Type == 3
	})
	assert.True(t, isClassA.Match(withPosition(2, 0, 0)))
	assert.False(t, isClassA.Match(withPosition(18, 0, 0)))
}
