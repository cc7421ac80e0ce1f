package test_test

import (
	"testing"

	"github.com/aldas/go-ais-client/ais"
	"github.com/stretchr/testify/assert"
)

// AssertMessage asserts that actual decoded to the same type, MMSI and
// field values as expect, tolerating delta differences in any scaled
// floating point field (lon/lat/course/sog/draught/...).
func AssertMessage(t *testing.T, expect *ais.Message, actual *ais.Message, delta float64) {
	assert.Equal(t, expect.Type, actual.Type)
	assert.Equal(t, expect.MMSI, actual.MMSI)
	AssertValues(t, expect.Values, actual.Values, delta)
}

// AssertValues asserts that actual contains every field name present
// in expect, with equal (or, for floats, delta-close) values.
func AssertValues(t *testing.T, expect []ais.Value, actual []ais.Value, delta float64) {
	byName := make(map[string]ais.Value, len(actual))
	for _, v := range actual {
		byName[v.Name] = v
	}
	for _, expectedValue := range expect {
		actualValue, ok := byName[expectedValue.Name]
		if !ok {
			t.Errorf("actual fields missing field %q present in expected fields", expectedValue.Name)
			continue
		}
		AssertValue(t, expectedValue, actualValue, delta)
	}
}

// AssertValue compares a single field, using InDelta for any field
// carrying a scaled floating point value.
func AssertValue(t *testing.T, expect ais.Value, actual ais.Value, delta float64) {
	if expect.Float != 0 || actual.Float != 0 {
		assert.InDelta(t, expect.Float, actual.Float, delta, "field %q", expect.Name)
		expect.Float, actual.Float = 0, 0
	}
	assert.Equal(t, expect, actual, "field %q", expect.Name)
}
