package fireweather

import (
	"math"

	"github.com/ecoclim/spitfire/pkg/fuelclass"
)

// rainResetThreshold is the daily precipitation [mm] above which the
// Nesterov index resets to zero.
const rainResetThreshold = 3.0

// Magnus-form dewpoint coefficients, Lawrence (2005) Eq. 8.
const (
	dewpointA = 17.62
	dewpointB = 243.12 // °C
)

// Nesterov is the cumulative dryness index of Nesterov (1949): each rainless
// day adds the product of air temperature and dewpoint depression, and any
// day with more than 3 mm of rain resets the accumulation. The index is
// unbounded upward; persistent growth is what models cumulative drying.
type Nesterov struct {
	index              float64
	effectiveWindspeed float64
	fireDangerIndex    float64
}

// NewNesterov returns a Nesterov index starting from zero accumulation.
func NewNesterov() *Nesterov {
	return &Nesterov{}
}

// Kind identifies the formulation.
func (n *Nesterov) Kind() IndexKind { return KindNesterov }

// UpdateIndex advances the index with one day of weather. Relative humidity
// is clamped to [0,100] before the dewpoint calculation.
func (n *Nesterov) UpdateIndex(tempC, precip, rh float64) {
	rh = math.Min(100.0, math.Max(0.0, rh))
	if precip > rainResetThreshold {
		n.index = 0.0
		return
	}
	tDew := Dewpoint(tempC, rh)
	n.index += nesterovTerm(tempC, tDew)
}

// UpdateEffectiveWindspeed recomputes the cover-adjusted windspeed [m/min].
func (n *Nesterov) UpdateEffectiveWindspeed(windSpeed, treeFrac, grassFrac, bareFrac float64) {
	n.effectiveWindspeed = EffectiveWindspeed(windSpeed, treeFrac, grassFrac, bareFrac)
}

// UpdateFireDangerIndex derives the bounded danger index from the running
// accumulation: FDI = 1 - exp(-alpha·NI), clamped to [0,1]. Thonicke et al.
// (2010) Eq. 8.
func (n *Nesterov) UpdateFireDangerIndex(alpha float64) {
	fdi := 1.0 - math.Exp(-alpha*n.index)
	n.fireDangerIndex = math.Min(1.0, math.Max(0.0, fdi))
}

// FireWeatherIndex returns the running Nesterov index [°C²].
func (n *Nesterov) FireWeatherIndex() float64 { return n.index }

// EffectiveWindspeed returns the cover-adjusted windspeed [m/min].
func (n *Nesterov) EffectiveWindspeed() float64 { return n.effectiveWindspeed }

// FireDangerIndex returns the derived danger index [0-1].
func (n *Nesterov) FireDangerIndex() float64 { return n.fireDangerIndex }

// FuelMoisture computes per-class fuel moisture as exp(-αFMC·NI) with
// αFMC = SAV/dryingRatio. Live grass dries with the surrounding litter, so
// it uses the twig SAV rather than its own. Thonicke et al. (2010) Eq. B2.
func (n *Nesterov) FuelMoisture(sav [fuelclass.NumClasses]float64, dryingRatio float64) ([fuelclass.NumClasses]float64, error) {
	var moisture [fuelclass.NumClasses]float64
	for i := range sav {
		s := sav[i]
		if fuelclass.Class(i) == fuelclass.LiveGrass {
			s = sav[fuelclass.Twigs]
		}
		alphaFMC := s / dryingRatio
		moisture[i] = math.Exp(-alphaFMC * n.index)
	}
	return moisture, nil
}

// Dewpoint calculates the dewpoint temperature [°C] from air temperature
// [°C] and relative humidity [%] with the Magnus-form approximation of
// Lawrence (2005) Eq. 8.
func Dewpoint(tempC, rh float64) float64 {
	gamma := math.Log(math.Max(1.0, rh)/100.0) + (dewpointA*tempC)/(dewpointB+tempC)
	return (dewpointB * gamma) / (dewpointA - gamma)
}

// nesterovTerm is a single day's contribution to the index: temperature
// times dewpoint depression, floored at zero so cold or saturated days
// neither add nor subtract danger.
func nesterovTerm(tempC, tDew float64) float64 {
	return math.Max(0.0, (tempC-tDew)*tempC)
}
