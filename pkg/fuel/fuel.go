// Package fuel tracks the state of a six-class fuel bed: per-class loading,
// moisture, and burnt fractions, plus the non-trunk aggregates that feed the
// spread equations. Trunks count toward total loading but are excluded from
// every aggregate; a surface fire consumes litter and grass, not standing
// boles.
//
// Loadings are in kgC/m². The Rothermel equations want dry matter, so the
// consumers divide by CarbonFraction at the boundary.
package fuel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ecoclim/spitfire/pkg/fireweather"
	"github.com/ecoclim/spitfire/pkg/fuelclass"
	"github.com/ecoclim/spitfire/pkg/params"
)

// CarbonFraction is the carbon content of dry plant matter [kgC/kg].
const CarbonFraction = 0.45

const (
	// maxGrassBurntFrac caps the burnt fraction of live grass; some of the
	// sward always survives a surface fire.
	maxGrassBurntFrac = 0.8

	// maxResidenceTime caps the fireline residence time [min].
	maxResidenceTime = 8.0
)

// Moisture of extinction fit, Peterson and Ryan (1986) Eq. 27.
const (
	mefA = 0.524
	mefB = 0.066
)

// Fuel is the mutable fuel bed state for one simulated site. The update
// methods recompute state in place; the driver calls them in a fixed order
// each day (loading, fractional loading, moisture, aggregates, burnt
// fraction).
type Fuel struct {
	params *params.FireParams

	loading           params.ClassArray // fuel loading [kgC/m²]
	fracLoading       params.ClassArray // share of non-trunk loading [0-1]
	effectiveMoisture params.ClassArray // moisture relative to extinction
	fracBurnt         params.ClassArray // fraction of loading consumed [0-1]

	nonTrunkLoading         float64
	averageMoistureNoTrunks float64
	mefNoTrunks             float64
	bulkDensityNoTrunks     float64
	savNoTrunks             float64
}

// New returns an empty fuel bed governed by p.
func New(p *params.FireParams) *Fuel {
	return &Fuel{params: p}
}

// UpdateLoading sets the per-class fuel loading [kgC/m²] from litter pools
// and live grass biomass.
func (f *Fuel) UpdateLoading(leafLitter, twigLitter, smallBranchLitter, largeBranchLitter, trunkLitter, liveGrass float64) {
	f.loading[fuelclass.DeadLeaves] = leafLitter
	f.loading[fuelclass.Twigs] = twigLitter
	f.loading[fuelclass.SmallBranches] = smallBranchLitter
	f.loading[fuelclass.LargeBranches] = largeBranchLitter
	f.loading[fuelclass.Trunks] = trunkLitter
	f.loading[fuelclass.LiveGrass] = liveGrass
}

// SumLoading recomputes the total non-trunk loading [kgC/m²].
func (f *Fuel) SumLoading() {
	f.nonTrunkLoading = floats.Sum(f.loading[:]) - f.loading[fuelclass.Trunks]
}

// CalculateFractionalLoading recomputes each class's share of the non-trunk
// loading. Trunks always get zero. With no non-trunk fuel every share is
// zero; repeated calls are idempotent because the shares derive from the
// loadings alone.
func (f *Fuel) CalculateFractionalLoading() {
	f.SumLoading()
	if f.nonTrunkLoading <= 0.0 {
		f.fracLoading = params.ClassArray{}
		f.nonTrunkLoading = 0.0
		return
	}
	for i := range f.loading {
		f.fracLoading[i] = f.loading[i] / f.nonTrunkLoading
	}
	f.fracLoading[fuelclass.Trunks] = 0.0
}

// UpdateFuelMoisture refreshes per-class effective moisture and the
// loading-weighted moisture aggregates from the fire weather index. sav and
// dryingRatio parameterize the index's moisture curve. An index without a
// moisture curve propagates fireweather.ErrMoistureUnsupported.
//
// With no fuel at all the moisture state zeroes out and no index call is
// made.
func (f *Fuel) UpdateFuelMoisture(sav params.ClassArray, dryingRatio float64, wx fireweather.Index) error {
	totalLoading := f.nonTrunkLoading + f.loading[fuelclass.Trunks]
	if totalLoading <= 0.0 {
		f.effectiveMoisture = params.ClassArray{}
		f.averageMoistureNoTrunks = 0.0
		f.mefNoTrunks = 0.0
		return nil
	}

	moisture, err := wx.FuelMoisture(sav, dryingRatio)
	if err != nil {
		return fmt.Errorf("updating fuel moisture: %w", err)
	}

	var mef params.ClassArray
	for i, s := range sav {
		mef[i] = MoistureOfExtinction(s)
	}
	for i := range moisture {
		f.effectiveMoisture[i] = moisture[i] / mef[i]
	}

	// Trunks carry no fractional loading, so full-array dot products
	// reduce to the non-trunk weighted averages.
	f.averageMoistureNoTrunks = floats.Dot(f.fracLoading[:], moisture[:])
	f.mefNoTrunks = floats.Dot(f.fracLoading[:], mef[:])
	return nil
}

// MoistureOfExtinction calculates the moisture content [m³/m³] above which
// fuel of the given surface-area-to-volume ratio [/cm] will not sustain
// fire. Peterson and Ryan (1986) Eq. 27.
func MoistureOfExtinction(sav float64) float64 {
	return mefA - mefB*math.Log(sav)
}

// AverageBulkDensityNoTrunks recomputes the loading-weighted bulk density of
// the non-trunk fuel [kg/m³]. With no non-trunk fuel it falls back to the
// unweighted mean over all classes.
func (f *Fuel) AverageBulkDensityNoTrunks() {
	if f.nonTrunkLoading > 0.0 {
		f.bulkDensityNoTrunks = floats.Dot(f.fracLoading[:], f.params.BulkDensity[:])
		return
	}
	f.bulkDensityNoTrunks = floats.Sum(f.params.BulkDensity[:]) / fuelclass.NumClasses
}

// AverageSAVNoTrunks recomputes the loading-weighted surface-area-to-volume
// ratio of the non-trunk fuel [/cm], with the same unweighted-mean fallback
// as AverageBulkDensityNoTrunks.
func (f *Fuel) AverageSAVNoTrunks() {
	if f.nonTrunkLoading > 0.0 {
		f.savNoTrunks = floats.Dot(f.fracLoading[:], f.params.SAV[:])
		return
	}
	f.savNoTrunks = floats.Sum(f.params.SAV[:]) / fuelclass.NumClasses
}

// CalculateFractionBurnt recomputes the fraction of each class consumed by
// fire from its effective moisture. Four regimes per class: below the
// minimum moisture everything burns, two linear ramps cover moderate
// moisture, and above the extinction point nothing burns. Live grass is
// capped at maxGrassBurntFrac, then the mineral fraction is removed from
// every class. Thonicke et al. (2010) Appendix B.
func (f *Fuel) CalculateFractionBurnt() {
	p := f.params
	var burnt params.ClassArray
	for i := range burnt {
		m := f.effectiveMoisture[i]
		switch {
		case m <= p.MinMoisture[i]:
			burnt[i] = 1.0
		case m <= p.MidMoisture[i]:
			burnt[i] = clamp01(p.LowMoistureCoeff[i] - p.LowMoistureSlope[i]*m)
		case m <= 1.0:
			burnt[i] = clamp01(p.MidMoistureCoeff[i] - p.MidMoistureSlope[i]*m)
		}
	}

	burnt[fuelclass.LiveGrass] = math.Min(maxGrassBurntFrac, burnt[fuelclass.LiveGrass])
	floats.Scale(1.0-p.MinerTotal, burnt[:])
	f.fracBurnt = burnt
}

// CalculateFuelConsumed returns the fuel consumed per class [kgC/m²].
func (f *Fuel) CalculateFuelConsumed() params.ClassArray {
	var consumed params.ClassArray
	floats.MulTo(consumed[:], f.fracBurnt[:], f.loading[:])
	return consumed
}

// CalculateResidenceTime returns the fireline residence time [min], capped
// at maxResidenceTime. Peterson and Ryan (1986) Eq. 8, with the non-trunk
// loading converted from kgC/m² to g dry matter/cm².
func (f *Fuel) CalculateResidenceTime() float64 {
	var tauL float64
	for i := range f.fracLoading {
		if !fuelclass.Class(i).NonTrunk() {
			continue
		}
		fuelMass := 39.4 / CarbonFraction / 10.0 * (f.fracLoading[i] * f.nonTrunkLoading)
		tauL += fuelMass * (1.0 - math.Sqrt(1.0-f.fracBurnt[i]))
	}
	return math.Min(maxResidenceTime, tauL)
}

// Loading returns the per-class fuel loading [kgC/m²].
func (f *Fuel) Loading() params.ClassArray { return f.loading }

// FracLoading returns each class's share of the non-trunk loading.
func (f *Fuel) FracLoading() params.ClassArray { return f.fracLoading }

// EffectiveMoisture returns per-class moisture relative to extinction.
func (f *Fuel) EffectiveMoisture() params.ClassArray { return f.effectiveMoisture }

// FracBurnt returns the per-class burnt fraction.
func (f *Fuel) FracBurnt() params.ClassArray { return f.fracBurnt }

// NonTrunkLoading returns the total non-trunk loading [kgC/m²].
func (f *Fuel) NonTrunkLoading() float64 { return f.nonTrunkLoading }

// AverageMoistureNoTrunks returns the loading-weighted fuel moisture of the
// non-trunk classes [m³/m³].
func (f *Fuel) AverageMoistureNoTrunks() float64 { return f.averageMoistureNoTrunks }

// MEFNoTrunks returns the loading-weighted moisture of extinction of the
// non-trunk classes [m³/m³].
func (f *Fuel) MEFNoTrunks() float64 { return f.mefNoTrunks }

// BulkDensityNoTrunks returns the loading-weighted bulk density of the
// non-trunk classes [kg/m³].
func (f *Fuel) BulkDensityNoTrunks() float64 { return f.bulkDensityNoTrunks }

// SAVNoTrunks returns the loading-weighted surface-area-to-volume ratio of
// the non-trunk classes [/cm].
func (f *Fuel) SAVNoTrunks() float64 { return f.savNoTrunks }

func clamp01(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}
