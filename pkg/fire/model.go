// Package fire drives one simulated day of surface fire behavior. The
// Model composes a fire weather index, a fuel bed, and the spread equations
// into a fixed daily sequence: weather first, then fuel state, then rate of
// spread, fireline intensity, and burnt area. The sequence itself never
// branches; degenerate states (no fuel, no wind) flow through as zeros.
package fire

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ecoclim/spitfire/pkg/fireweather"
	"github.com/ecoclim/spitfire/pkg/fuel"
	"github.com/ecoclim/spitfire/pkg/fuelclass"
	"github.com/ecoclim/spitfire/pkg/params"
	"github.com/ecoclim/spitfire/pkg/rothermel"
)

// LitterInputs is one day's fuel pools [kgC/m²].
type LitterInputs struct {
	LeafLitter        float64
	TwigLitter        float64
	SmallBranchLitter float64
	LargeBranchLitter float64
	TrunkLitter       float64
	LiveGrass         float64
}

// DailyInputs is everything that varies day to day: weather, ignitions,
// land cover, and fuel pools.
type DailyInputs struct {
	TempC     float64 // daily mean air temperature [°C]
	Precip    float64 // daily precipitation [mm]
	RH        float64 // daily relative humidity [%]
	WindSpeed float64 // wind speed [m/min]

	NumIgnitions  float64 // ignition density [/km²/day]
	TreeFraction  float64 // tree cover [0-1]
	GrassFraction float64 // grass cover [0-1]
	BareFraction  float64 // bare ground [0-1]

	Litter LitterInputs
}

// Result is one day's fire behavior.
type Result struct {
	AreaBurnt     float64 // [m²/km²/day]
	FireIntensity float64 // surface fireline intensity [kW/m]
	RateOfSpread  float64 // forward rate of spread [m/min]
}

// Model holds the pieces of the daily fire calculation for one site. The
// parameter set is shared and read-only; the fuel bed and weather index are
// owned by the model and mutate day to day.
type Model struct {
	params  *params.FireParams
	fuel    *fuel.Fuel
	weather fireweather.Index
}

// New assembles a daily fire model from its collaborators.
func New(p *params.FireParams, f *fuel.Fuel, wx fireweather.Index) *Model {
	return &Model{params: p, fuel: f, weather: wx}
}

// Step advances the model by one day and returns the day's fire behavior.
func (m *Model) Step(in DailyInputs) (Result, error) {
	m.UpdateFireWeather(in.TempC, in.Precip, in.RH, in.WindSpeed,
		in.TreeFraction, in.GrassFraction, in.BareFraction)

	if err := m.UpdateFuelCharacteristics(in.Litter); err != nil {
		return Result{}, err
	}

	rosFront, rosBack := m.RateOfSpread(in.WindSpeed)
	intensity := m.SurfaceFireIntensity(rosFront)
	area := m.AreaBurnt(in.NumIgnitions, in.TreeFraction, rosBack, rosFront)

	return Result{
		AreaBurnt:     area,
		FireIntensity: intensity,
		RateOfSpread:  rosFront,
	}, nil
}

// UpdateFireWeather advances the weather index with one day of weather and
// refreshes the effective windspeed and fire danger index.
func (m *Model) UpdateFireWeather(tempC, precip, rh, windSpeed, treeFrac, grassFrac, bareFrac float64) {
	m.weather.UpdateIndex(tempC, precip, rh)
	m.weather.UpdateEffectiveWindspeed(windSpeed, treeFrac, grassFrac, bareFrac)
	m.weather.UpdateFireDangerIndex(m.params.FDIAlpha)
}

// UpdateFuelCharacteristics refreshes the fuel bed from today's litter
// pools: loading, fractional loading, moisture, and the bulk density and
// SAV aggregates.
func (m *Model) UpdateFuelCharacteristics(litter LitterInputs) error {
	m.fuel.UpdateLoading(litter.LeafLitter, litter.TwigLitter,
		litter.SmallBranchLitter, litter.LargeBranchLitter,
		litter.TrunkLitter, litter.LiveGrass)

	m.fuel.SumLoading()
	m.fuel.CalculateFractionalLoading()

	if err := m.fuel.UpdateFuelMoisture(m.params.SAV, m.params.DryingRatio, m.weather); err != nil {
		return err
	}

	m.fuel.AverageBulkDensityNoTrunks()
	m.fuel.AverageSAVNoTrunks()
	return nil
}

// RateOfSpread calculates the forward and backward rates of spread [m/min]
// from the current fuel and weather state. With no non-trunk fuel both are
// zero. The optimum packing ratio takes the non-trunk bulk density as its
// argument, not SAV; that is how the source formula is written and the
// behavior is preserved as-is. Backward spread decays with the raw wind,
// not the effective windspeed, because backing fire is not sheltered by
// vegetation.
func (m *Model) RateOfSpread(windSpeed float64) (rosFront, rosBack float64) {
	if m.fuel.NonTrunkLoading() <= 0.0 {
		return 0.0, 0.0
	}

	// packing ratio: fraction of fuel bed volume occupied by fuel
	beta := m.fuel.BulkDensityNoTrunks() / m.params.ParticleDensity

	betaOp := rothermel.OptimumPackingRatio(m.fuel.BulkDensityNoTrunks())
	betaRatio := 0.0
	if betaOp >= 0.0 {
		betaRatio = beta / betaOp
	}

	// mineral content does not burn
	loading := m.fuel.NonTrunkLoading() * (1.0 - m.params.MinerTotal)

	iR := rothermel.ReactionIntensity(
		loading/fuel.CarbonFraction,
		m.fuel.SAVNoTrunks(),
		betaRatio,
		m.fuel.AverageMoistureNoTrunks(),
		m.fuel.MEFNoTrunks(),
		m.params.FuelEnergy,
		m.params.MineralDampening,
	)

	qIg := rothermel.HeatOfPreignition(m.fuel.AverageMoistureNoTrunks())
	eps := rothermel.EffectiveHeatingNumber(m.fuel.SAVNoTrunks())
	phiWind := rothermel.WindFactor(m.weather.EffectiveWindspeed(), betaRatio, m.fuel.SAVNoTrunks())
	xi := rothermel.PropagatingFlux(beta, m.fuel.SAVNoTrunks())

	rosFront = rothermel.ForwardRateOfSpread(m.fuel.BulkDensityNoTrunks(), eps, qIg, iR, xi, phiWind)
	rosBack = rothermel.BackwardRateOfSpread(rosFront, windSpeed)
	return rosFront, rosBack
}

// SurfaceFireIntensity calculates the surface fireline intensity [kW/m] for
// the given forward rate of spread [m/min], consuming fuel at the current
// moisture state. Trunks are excluded from the consumed total.
func (m *Model) SurfaceFireIntensity(rosFront float64) float64 {
	m.fuel.CalculateFractionBurnt()
	consumed := m.fuel.CalculateFuelConsumed()
	consumedNoTrunks := floats.Sum(consumed[:]) - consumed[fuelclass.Trunks]

	return rothermel.FireIntensity(
		consumedNoTrunks/fuel.CarbonFraction,
		rosFront/60.0, // m/min to m/s
		m.params.FuelEnergy,
	)
}

// AreaBurnt calculates the day's burnt area [m²/km²/day] from the fire
// danger index, the spread rates [m/min], the ignition density, and tree
// cover.
func (m *Model) AreaBurnt(numIgnitions, treeFraction, rosBack, rosFront float64) float64 {
	duration := rothermel.FireDuration(m.weather.FireDangerIndex(), m.params.MaxDuration, m.params.DurationSlope)
	lengthToBreadth := rothermel.LengthToBreadthRatio(m.weather.EffectiveWindspeed(), treeFraction)
	size := rothermel.FireSize(lengthToBreadth, rosBack, rosFront, duration)
	return rothermel.AreaBurnt(size, numIgnitions, m.weather.FireDangerIndex())
}

// Weather exposes the model's fire weather index for diagnostics.
func (m *Model) Weather() fireweather.Index { return m.weather }

// Fuel exposes the model's fuel bed for diagnostics.
func (m *Model) Fuel() *fuel.Fuel { return m.fuel }

// Params returns the shared parameter set.
func (m *Model) Params() *params.FireParams { return m.params }
