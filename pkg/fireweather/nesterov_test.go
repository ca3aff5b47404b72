package fireweather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
)

// savDefaults matches the per-class surface-area-to-volume ratios used by
// the fuel model [/cm].
var savDefaults = [fuelclass.NumClasses]float64{13.0, 3.58, 0.98, 0.2, 66.0, 66.0}

func TestDewpoint(t *testing.T) {
	assert.InDelta(t, 4.583, Dewpoint(30.0, 20.0), 1e-3)
	assert.Less(t, Dewpoint(30.0, 20.0), 30.0)

	// Saturated air: dewpoint equals air temperature.
	assert.InDelta(t, 20.0, Dewpoint(20.0, 100.0), 1e-9)

	// Humidity is floored at 1% so the logarithm stays finite.
	assert.Equal(t, Dewpoint(30.0, 1.0), Dewpoint(30.0, 0.0))
	assert.Equal(t, Dewpoint(30.0, 1.0), Dewpoint(30.0, -5.0))
}

func TestUpdateIndexAccumulates(t *testing.T) {
	n := NewNesterov()

	n.UpdateIndex(30.0, 0.0, 20.0)
	assert.InDelta(t, 762.52, n.FireWeatherIndex(), 0.01)

	// A second identical dry day doubles the accumulation.
	n.UpdateIndex(30.0, 0.0, 20.0)
	assert.InDelta(t, 1525.05, n.FireWeatherIndex(), 0.02)
}

func TestUpdateIndexRainReset(t *testing.T) {
	n := NewNesterov()
	n.UpdateIndex(30.0, 0.0, 20.0)
	require.Greater(t, n.FireWeatherIndex(), 0.0)

	// A wet day resets the accumulation to exactly zero.
	n.UpdateIndex(22.0, 10.0, 80.0)
	assert.Zero(t, n.FireWeatherIndex())
}

func TestUpdateIndexRainThreshold(t *testing.T) {
	// 3 mm is the last day that still accumulates; the reset needs more.
	n := NewNesterov()
	n.UpdateIndex(30.0, 3.0, 20.0)
	assert.Greater(t, n.FireWeatherIndex(), 0.0)

	n.UpdateIndex(30.0, 3.01, 20.0)
	assert.Zero(t, n.FireWeatherIndex())
}

func TestUpdateIndexColdOrSaturatedDay(t *testing.T) {
	// Temperature below the dewpoint depression floor adds nothing.
	n := NewNesterov()
	n.UpdateIndex(-5.0, 0.0, 50.0)
	assert.Zero(t, n.FireWeatherIndex())

	// Saturated air: depression vanishes up to rounding.
	n.UpdateIndex(20.0, 0.0, 100.0)
	assert.InDelta(t, 0.0, n.FireWeatherIndex(), 1e-9)
}

func TestUpdateIndexHumidityClamp(t *testing.T) {
	a := NewNesterov()
	b := NewNesterov()
	a.UpdateIndex(25.0, 0.0, -10.0)
	b.UpdateIndex(25.0, 0.0, 0.0)
	assert.Equal(t, b.FireWeatherIndex(), a.FireWeatherIndex())
	assert.Greater(t, a.FireWeatherIndex(), 0.0)
}

func TestUpdateFireDangerIndex(t *testing.T) {
	n := NewNesterov()

	n.UpdateFireDangerIndex(0.00037)
	assert.Zero(t, n.FireDangerIndex())

	n.UpdateIndex(30.0, 0.0, 20.0)
	n.UpdateFireDangerIndex(0.00037)
	assert.InDelta(t, 0.2458, n.FireDangerIndex(), 1e-3)

	// Twenty more scorching days: danger saturates but never exceeds 1.
	for i := 0; i < 20; i++ {
		n.UpdateIndex(35.0, 0.0, 10.0)
	}
	n.UpdateFireDangerIndex(0.00037)
	assert.Greater(t, n.FireDangerIndex(), 0.9)
	assert.LessOrEqual(t, n.FireDangerIndex(), 1.0)
}

func TestUpdateEffectiveWindspeed(t *testing.T) {
	n := NewNesterov()
	n.UpdateEffectiveWindspeed(300.0, 0.0, 1.0, 0.0)
	assert.Equal(t, 180.0, n.EffectiveWindspeed())
}

func TestFuelMoisture(t *testing.T) {
	n := NewNesterov()

	// No accumulated dryness: everything is saturated.
	moisture, err := n.FuelMoisture(savDefaults, 5000.0)
	require.NoError(t, err)
	for i, m := range moisture {
		assert.Equal(t, 1.0, m, "class %d", i)
	}

	n.UpdateIndex(30.0, 0.0, 20.0)
	moisture, err = n.FuelMoisture(savDefaults, 5000.0)
	require.NoError(t, err)

	assert.InDelta(t, 0.1377, moisture[fuelclass.Twigs], 1e-3)

	// Live grass dries with the twig curve, not its own SAV.
	assert.Equal(t, moisture[fuelclass.Twigs], moisture[fuelclass.LiveGrass])

	// Finer fuel dries faster.
	assert.Less(t, moisture[fuelclass.DeadLeaves], moisture[fuelclass.Twigs])
	assert.Less(t, moisture[fuelclass.Twigs], moisture[fuelclass.SmallBranches])
	assert.Less(t, moisture[fuelclass.SmallBranches], moisture[fuelclass.LargeBranches])
	assert.Less(t, moisture[fuelclass.LargeBranches], moisture[fuelclass.Trunks])

	for i, m := range moisture {
		assert.Greater(t, m, 0.0, "class %d", i)
		assert.Less(t, m, 1.0, "class %d", i)
	}
}
