package rothermel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireDuration(t *testing.T) {
	// No fire danger: the logistic bottoms out at one minute.
	assert.Equal(t, 1.0, FireDuration(0.0, 240.0, -11.06))

	// Extreme danger approaches the maximum duration.
	assert.InDelta(t, 240.09, FireDuration(1.0, 240.0, -11.06), 0.01)

	prev := 0.0
	for _, fdi := range []float64{0.1, 0.25, 0.5, 0.75, 1.0} {
		d := FireDuration(fdi, 240.0, -11.06)
		assert.Greater(t, d, prev, "fdi=%g", fdi)
		prev = d
	}
}

func TestLengthToBreadthRatio(t *testing.T) {
	// Below 1 km/h the fire is circular regardless of cover.
	assert.Equal(t, 1.0, LengthToBreadthRatio(16.0, 0.0))
	assert.Equal(t, 1.0, LengthToBreadthRatio(16.0, 1.0))
	assert.Equal(t, 1.0, LengthToBreadthRatio(0.0, 0.5))

	// 180 m/min is 10.8 km/h.
	open := LengthToBreadthRatio(180.0, 0.2)
	forested := LengthToBreadthRatio(180.0, 0.8)
	assert.InDelta(t, 3.318, open, 0.01)
	assert.InDelta(t, 1.548, forested, 0.01)

	// Canopy drag keeps forested fires rounder.
	assert.Less(t, forested, open)

	// The forested form applies strictly above 55% tree cover.
	assert.Equal(t, LengthToBreadthRatio(180.0, 0.0), LengthToBreadthRatio(180.0, 0.55))
	assert.NotEqual(t, LengthToBreadthRatio(180.0, 0.55), LengthToBreadthRatio(180.0, 0.56))
}

func TestFireSize(t *testing.T) {
	// distForward 20 m, distBack 5 m over 10 min at 2:1 elongation.
	size := FireSize(2.0, 0.5, 2.0, 10.0)
	assert.InDelta(t, 245.437, size, 1e-3)

	assert.Zero(t, FireSize(-1.0, 0.5, 2.0, 10.0))
	assert.Zero(t, FireSize(2.0, 0.0, 0.0, 10.0))
}

func TestAreaBurnt(t *testing.T) {
	assert.Equal(t, 1000.0, AreaBurnt(1000.0, 2.0, 0.5))
	assert.Zero(t, AreaBurnt(1000.0, 2.0, 0.0))
	assert.Zero(t, AreaBurnt(1000.0, 0.0, 0.5))
}

func TestFireIntensity(t *testing.T) {
	assert.Equal(t, 18000.0, FireIntensity(2.0, 0.5, 18000.0))
	assert.Zero(t, FireIntensity(0.0, 0.5, 18000.0))
}
