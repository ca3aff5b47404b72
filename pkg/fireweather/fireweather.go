// Package fireweather tracks fire danger from daily weather using pluggable
// index formulations. An Index accumulates a running fire weather index
// across days, derives a bounded fire danger index from it, and supplies the
// per-fuel-class moisture the fuel model needs. One concrete formulation is
// provided (Nesterov); others can be added without touching the fuel or
// driver code.
package fireweather

import (
	"errors"
	"fmt"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
)

// ErrMoistureUnsupported is returned by an Index whose formulation does not
// define a fuel moisture curve. The fuel model propagates it instead of
// silently substituting a default.
var ErrMoistureUnsupported = errors.New("fuel moisture not implemented for this fire weather index")

// Wind attenuation by land cover. Tree canopies slow near-surface wind more
// than grass or bare ground.
const (
	windAttenTreed = 0.4
	windAttenOpen  = 0.6
)

// IndexKind identifies a fire weather index formulation.
type IndexKind string

const (
	// KindNesterov is the cumulative dryness index of Nesterov (1949).
	KindNesterov IndexKind = "nesterov"
)

// Index is the contract every fire weather formulation satisfies. An Index
// carries the only state that survives from one simulated day to the next:
// the running fire weather index. Effective windspeed and the fire danger
// index are recomputed every day.
type Index interface {
	// Kind identifies the formulation, for logs and errors.
	Kind() IndexKind

	// UpdateIndex advances the running index with one day of weather:
	// mean temperature [°C], precipitation [mm], relative humidity [%].
	UpdateIndex(tempC, precip, rh float64)

	// UpdateEffectiveWindspeed recomputes the cover-adjusted windspeed
	// [m/min] from the raw wind [m/min] and land cover fractions [0-1].
	UpdateEffectiveWindspeed(windSpeed, treeFrac, grassFrac, bareFrac float64)

	// UpdateFireDangerIndex derives the bounded [0,1] danger index from
	// the running index. alpha is the formulation's scaling parameter.
	UpdateFireDangerIndex(alpha float64)

	// FireWeatherIndex returns the running index.
	FireWeatherIndex() float64

	// EffectiveWindspeed returns the cover-adjusted windspeed [m/min].
	EffectiveWindspeed() float64

	// FireDangerIndex returns the derived danger index [0-1].
	FireDangerIndex() float64

	// FuelMoisture computes per-fuel-class moisture [m³/m³] from the
	// index's current state, the per-class surface-area-to-volume ratios
	// [/cm], and the drying ratio. Formulations without a moisture curve
	// return ErrMoistureUnsupported.
	FuelMoisture(sav [fuelclass.NumClasses]float64, dryingRatio float64) ([fuelclass.NumClasses]float64, error)
}

// New constructs an Index of the requested kind. Unknown kinds are a
// configuration error, reported rather than defaulted.
func New(kind IndexKind) (Index, error) {
	switch kind {
	case KindNesterov:
		return NewNesterov(), nil
	default:
		return nil, fmt.Errorf("unsupported fire weather index kind %q", kind)
	}
}

// EffectiveWindspeed reduces the raw wind speed [m/min] for land cover.
// Shared by all formulations.
func EffectiveWindspeed(windSpeed, treeFrac, grassFrac, bareFrac float64) float64 {
	return windSpeed * (treeFrac*windAttenTreed + (grassFrac+bareFrac)*windAttenOpen)
}
