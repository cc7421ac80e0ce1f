package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnRate_RoundTrip(t *testing.T) {
	cases := []float64{0, 10, -10, 90, -90, 350, -350}
	for _, deg := range cases {
		raw := encodeTurnRate(deg, true)
		got, available := decodeTurnRate(raw)
		assert.True(t, available)
		assert.InDelta(t, deg, got, 5) // lossy compression, generous tolerance
	}
}

func TestTurnRate_NotAvailable(t *testing.T) {
	raw := encodeTurnRate(0, false)
	assert.EqualValues(t, turnNoInformation, raw)

	_, available := decodeTurnRate(raw)
	assert.False(t, available)
}

func TestTurnRate_Extremes(t *testing.T) {
	got, available := decodeTurnRate(turnMaxRightAtOrAbove)
	assert.True(t, available)
	assert.Equal(t, 720.0, got)

	got, available = decodeTurnRate(turnMaxLeftAtOrBelow)
	assert.True(t, available)
	assert.Equal(t, -720.0, got)
}
