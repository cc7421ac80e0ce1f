package main

import (
	"testing"

	"github.com/aldas/go-ais-client/ais"
	"github.com/stretchr/testify/assert"
)

func TestFieldValue(t *testing.T) {
	assert.Equal(t, ais.StringValue("shipname", "ORION"), fieldValue("shipname", "ORION"))
	assert.Equal(t, ais.BoolValue("raim", true), fieldValue("raim", true))
	assert.Equal(t, ais.UintValue("heading", 90), fieldValue("heading", float64(90)))
	assert.Equal(t, ais.FloatValue("lat", 37.5), fieldValue("lat", 37.5))
}
