package rothermel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorchHeight(t *testing.T) {
	assert.Zero(t, ScorchHeight(0.148, 0.0))
	assert.Zero(t, ScorchHeight(0.148, -50.0))

	assert.InDelta(t, 14.83, ScorchHeight(0.148, 1000.0), 0.01)

	prev := 0.0
	for _, intensity := range []float64{10, 100, 500, 2000} {
		sh := ScorchHeight(0.148, intensity)
		assert.Greater(t, sh, prev, "intensity=%g", intensity)
		prev = sh
	}
}

func TestCrownFractionBurnt(t *testing.T) {
	assert.Zero(t, CrownFractionBurnt(10.0, 5.0, 0.0))
	assert.Zero(t, CrownFractionBurnt(10.0, 5.0, -2.0))

	// Scorch reaching halfway into the crown.
	assert.Equal(t, 0.5, CrownFractionBurnt(4.0, 5.0, 2.0))

	// Clamped when the scorch overtops the crown or never reaches it.
	assert.Equal(t, 1.0, CrownFractionBurnt(10.0, 5.0, 2.0))
	assert.Zero(t, CrownFractionBurnt(0.0, 10.0, 2.0))
}

func TestBarkThickness(t *testing.T) {
	assert.Equal(t, 1.0, BarkThickness(0.1, 10.0))
	assert.Zero(t, BarkThickness(0.1, 0.0))
}

func TestCriticalResidenceTime(t *testing.T) {
	assert.Equal(t, 2.9, CriticalResidenceTime(1.0))
	assert.InDelta(t, 11.6, CriticalResidenceTime(2.0), 1e-12)
}

func TestCambialMortalityRate(t *testing.T) {
	// The published piecewise form is exact at its breakpoints.
	assert.Zero(t, cambialMortalityRate(0.22))
	assert.Equal(t, 1.0, cambialMortalityRate(2.0))

	assert.Zero(t, cambialMortalityRate(0.0))
	assert.Zero(t, cambialMortalityRate(0.1))
	assert.Equal(t, 1.0, cambialMortalityRate(3.5))
	assert.InDelta(t, 0.438, cambialMortalityRate(1.0), 1e-12)
}

func TestCambialMortality(t *testing.T) {
	// 1 cm bark gives a 2.9 min critical time; twice that residence kills.
	assert.Equal(t, 1.0, CambialMortality(0.1, 10.0, 5.8))

	// A brief fire leaves the cambium intact.
	assert.Zero(t, CambialMortality(0.1, 10.0, 0.5))
}

func TestCrownFireMortality(t *testing.T) {
	assert.InDelta(t, 0.125, CrownFireMortality(1.0, 0.5), 1e-12)
	assert.Equal(t, 1.0, CrownFireMortality(3.0, 0.9))
	assert.Zero(t, CrownFireMortality(1.0, 0.0))
	assert.Zero(t, CrownFireMortality(-1.0, 0.5))
}

func TestTotalFireMortality(t *testing.T) {
	assert.Equal(t, 0.75, TotalFireMortality(0.5, 0.5))
	assert.Equal(t, 1.0, TotalFireMortality(1.0, 0.0))
	assert.Equal(t, 1.0, TotalFireMortality(0.0, 1.2))
	assert.Zero(t, TotalFireMortality(0.0, 0.0))

	// Independent causes combine symmetrically.
	assert.Equal(t, TotalFireMortality(0.3, 0.6), TotalFireMortality(0.6, 0.3))
}
