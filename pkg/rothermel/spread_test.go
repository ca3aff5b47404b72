package rothermel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	savGrid  = []float64{5, 10, 15.5, 30, 66, 120}
	betaGrid = []float64{1e-3, 2e-3, 5e-3, 0.01, 0.02}
)

func TestPropagatingFluxPositiveAndMonotonic(t *testing.T) {
	factors := []float64{1, 1.5, 2, 5}
	for _, sav := range savGrid {
		for _, beta := range betaGrid {
			flux := PropagatingFlux(beta, sav)
			require.Greater(t, flux, 0.0, "sav=%g beta=%g", sav, beta)

			for _, f := range factors {
				moreSAV := PropagatingFlux(beta, sav*f)
				moreBeta := PropagatingFlux(beta*f, sav)
				assert.GreaterOrEqual(t, moreSAV, flux, "sav=%g beta=%g f=%g", sav, beta, f)
				assert.GreaterOrEqual(t, moreBeta, flux, "sav=%g beta=%g f=%g", sav, beta, f)
			}
		}
	}
}

func TestOptimumReactionVelocityPeaksAtOne(t *testing.T) {
	betaRatios := []float64{0.1, 0.25, 0.5, 0.9, 1.0, 1.1, 2, 3.5, 5}
	for _, sav := range savGrid {
		maxVel := MaximumReactionVelocity(sav)
		require.Greater(t, maxVel, 0.0)

		// The peak sits exactly at a relative packing ratio of 1.
		assert.Equal(t, maxVel, OptimumReactionVelocity(maxVel, sav, 1.0), "sav=%g", sav)

		for _, br := range betaRatios {
			vel := OptimumReactionVelocity(maxVel, sav, br)
			assert.LessOrEqual(t, vel, maxVel, "sav=%g betaRatio=%g", sav, br)
			assert.GreaterOrEqual(t, vel, 0.0, "sav=%g betaRatio=%g", sav, br)
		}
	}
}

// The reaction velocity curve must not collapse at high relative packing
// ratios for fine fuels. Peak-location checks alone miss this: the failure
// only shows in the tail.
func TestOptimumReactionVelocityHighSAVTail(t *testing.T) {
	for _, sav := range []float64{15.5, 20, 40, 66, 90, 120} {
		maxVel := MaximumReactionVelocity(sav)
		vel := OptimumReactionVelocity(maxVel, sav, 5)
		assert.Greater(t, vel, 0.5, "sav=%g", sav)
	}
}

func TestDomainGuards(t *testing.T) {
	assert.Zero(t, OptimumPackingRatio(-1))
	assert.Zero(t, MaximumReactionVelocity(-5))
	assert.Zero(t, EffectiveHeatingNumber(-0.1))
	assert.Zero(t, MoistureCoefficient(0.1, -0.2))
}

func TestOptimumPackingRatio(t *testing.T) {
	// Decreases with SAV: finer fuel packs optimally at lower density.
	prev := math.Inf(1)
	for _, sav := range savGrid {
		ratio := OptimumPackingRatio(sav)
		assert.Greater(t, ratio, 0.0, "sav=%g", sav)
		assert.Less(t, ratio, prev, "sav=%g", sav)
		prev = ratio
	}
}

func TestMoistureCoefficient(t *testing.T) {
	// Dry fuel burns unimpeded, saturated fuel not at all.
	assert.Equal(t, 1.0, MoistureCoefficient(0.0, 0.3))
	assert.Zero(t, MoistureCoefficient(0.6, 0.3))
	assert.InDelta(t, 0.0, MoistureCoefficient(0.3, 0.3), 1e-12)

	// Monotonically decreasing up to extinction.
	prev := 1.0
	for _, m := range []float64{0.05, 0.1, 0.15, 0.2, 0.25} {
		coeff := MoistureCoefficient(m, 0.3)
		assert.Greater(t, coeff, 0.0, "moisture=%g", m)
		assert.Less(t, coeff, prev, "moisture=%g", m)
		prev = coeff
	}
}

func TestHeatOfPreignition(t *testing.T) {
	assert.Equal(t, 581.0, HeatOfPreignition(0.0))
	assert.Equal(t, 581.0+2594.0*0.5, HeatOfPreignition(0.5))
}

func TestEffectiveHeatingNumber(t *testing.T) {
	// Fine fuels heat almost entirely; coarse fuels barely.
	fine := EffectiveHeatingNumber(66)
	coarse := EffectiveHeatingNumber(0.98)
	assert.Greater(t, fine, 0.9)
	assert.Less(t, coarse, 0.01)
	assert.InDelta(t, math.Exp(-4.528/66.0), fine, 1e-12)
}

func TestWindFactor(t *testing.T) {
	// Calm air contributes nothing.
	assert.Zero(t, WindFactor(0.0, 0.5, 66))

	// Increases with wind, for any packing.
	for _, br := range []float64{0.1, 0.5, 1, 2} {
		prev := 0.0
		for _, wind := range []float64{30, 90, 180, 300} {
			phi := WindFactor(wind, br, 66)
			assert.Greater(t, phi, prev, "betaRatio=%g wind=%g", br, wind)
			prev = phi
		}
	}

	// Looser beds (lower relative packing) respond more strongly to wind.
	loose := WindFactor(180, 0.1, 66)
	dense := WindFactor(180, 1.0, 66)
	assert.Greater(t, loose, dense)
}

func TestForwardRateOfSpread(t *testing.T) {
	ros := ForwardRateOfSpread(4.0, 0.93, 900.0, 9800.0, 0.04, 45.0)
	assert.Greater(t, ros, 0.0)

	// Degenerate fuel beds spread nowhere instead of dividing by zero.
	assert.Zero(t, ForwardRateOfSpread(0.0, 0.93, 900.0, 9800.0, 0.04, 45.0))
	assert.Zero(t, ForwardRateOfSpread(4.0, 0.0, 900.0, 9800.0, 0.04, 45.0))
	assert.Zero(t, ForwardRateOfSpread(4.0, 0.93, 0.0, 9800.0, 0.04, 45.0))
	assert.Zero(t, ForwardRateOfSpread(-4.0, 0.93, 900.0, 9800.0, 0.04, 45.0))
}

func TestReactionIntensity(t *testing.T) {
	iR := ReactionIntensity(0.3, 66, 0.9, 0.05, 0.25, 18000, 0.41739)
	assert.Greater(t, iR, 0.0)

	// Linear in loading and heat content.
	assert.InDelta(t, 2*iR, ReactionIntensity(0.6, 66, 0.9, 0.05, 0.25, 18000, 0.41739), 1e-9)
	assert.InDelta(t, 2*iR, ReactionIntensity(0.3, 66, 0.9, 0.05, 0.25, 36000, 0.41739), 1e-9)

	// Fuel wetter than its moisture of extinction releases nothing.
	assert.Zero(t, ReactionIntensity(0.3, 66, 0.9, 0.3, 0.25, 18000, 0.41739))
}

func TestBackwardRateOfSpread(t *testing.T) {
	// No wind: the fire backs as fast as it advances.
	assert.Equal(t, 10.0, BackwardRateOfSpread(10.0, 0.0))

	assert.InDelta(t, 10.0*math.Exp(-0.012*300.0), BackwardRateOfSpread(10.0, 300.0), 1e-12)

	// Monotonically suppressed by wind.
	prev := 10.0
	for _, wind := range []float64{50, 100, 200, 400} {
		back := BackwardRateOfSpread(10.0, wind)
		assert.Less(t, back, prev, "wind=%g", wind)
		prev = back
	}
}
