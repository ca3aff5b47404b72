// Package rothermel implements the closed-form surface fire spread equations
// of Rothermel (1972) as adapted for global vegetation modeling by Thonicke
// et al. (2010). Every function is stateless and total for finite inputs:
// physically degenerate arguments (no fuel, zero surface area) return a
// defined sentinel instead of an error so that a simulation never aborts on
// an empty fuel bed. SAV is the fuel surface-area-to-volume ratio in /cm
// throughout.
package rothermel

import "math"

const (
	// mPerMinToFtPerMin converts wind speed from m/min to ft/min for the
	// Rothermel wind factor, which is fitted in US units.
	mPerMinToFtPerMin = 3.281

	// qDry is the heat of preignition of oven-dry fuel [kJ/kg],
	// converted from Rothermel's 250 Btu/lb.
	qDry = 581.0
)

// OptimumPackingRatio calculates the packing ratio at which reaction
// velocity peaks [unitless]. Rothermel (1972) Eq. 37; Thonicke et al.
// (2010) Eq. A6.
func OptimumPackingRatio(sav float64) float64 {
	if sav < 0.0 {
		return 0.0
	}
	return 0.200395 * math.Pow(sav, -0.8189)
}

// MaximumReactionVelocity calculates the maximum reaction velocity [/min],
// the fuel consumption rate of an ideally packed, dry, mineral-free fuel
// bed. Rothermel (1972) Eq. 36.
func MaximumReactionVelocity(sav float64) float64 {
	if sav < 0.0 {
		return 0.0
	}
	return 1.0 / (0.0591 + 2.926*math.Pow(sav, -1.5))
}

// OptimumReactionVelocity calculates the reaction velocity [/min] of a real
// fuel bed from the maximum velocity and the relative packing ratio
// betaRatio. The curve peaks at betaRatio == 1 by construction. Rothermel
// (1972) Eq. 38.
func OptimumReactionVelocity(maxVel, sav, betaRatio float64) float64 {
	a := 8.9033 * math.Pow(sav, -0.7913)
	return maxVel * math.Pow(betaRatio, a) * math.Exp(a*(1.0-betaRatio))
}

// MoistureCoefficient calculates the moisture dampening coefficient for
// reaction intensity [unitless], a cubic in the ratio of fuel moisture to
// moisture of extinction, clamped to be non-negative. Thonicke et al.
// (2010) Table A1.
func MoistureCoefficient(moisture, mef float64) float64 {
	if mef < 0.0 {
		return 0.0
	}
	w := moisture / mef
	coeff := 1.0 - 2.59*w + 5.11*w*w - 3.52*w*w*w
	return math.Max(0.0, coeff)
}

// ReactionIntensity calculates the rate of energy release per unit area
// within the flaming front [kJ/m²/min]. fuelLoading is the net (dry,
// mineral-reduced) loading [kg/m²] and fuelEnergy the fuel heat content
// [kJ/kg].
func ReactionIntensity(fuelLoading, sav, betaRatio, moisture, mef, fuelEnergy, mineralDampening float64) float64 {
	maxVel := MaximumReactionVelocity(sav)
	optVel := OptimumReactionVelocity(maxVel, sav, betaRatio)
	moistCoeff := MoistureCoefficient(moisture, mef)
	return optVel * fuelLoading * fuelEnergy * moistCoeff * mineralDampening
}

// HeatOfPreignition calculates the heat required to bring a unit weight of
// fuel to ignition [kJ/kg], linear in fuel moisture. Rothermel (1972)
// Eq. 12 converted from Btu/lb.
func HeatOfPreignition(moisture float64) float64 {
	return qDry + 2594.0*moisture
}

// EffectiveHeatingNumber calculates the proportion of a fuel particle heated
// to ignition temperature when flaming combustion starts [unitless].
// Thonicke et al. (2010) Eq. A3.
func EffectiveHeatingNumber(sav float64) float64 {
	if sav < 0.0 {
		return 0.0
	}
	return math.Exp(-4.528 / sav)
}

// WindFactor calculates the dimensionless wind multiplier for the rate of
// spread equation. windSpeed is the midflame wind in m/min, converted to
// ft/min internally because the underlying fit (Rothermel 1972 Eqs. 47-50)
// is in US units.
func WindFactor(windSpeed, betaRatio, sav float64) float64 {
	b := 0.15988 * math.Pow(sav, 0.54)
	c := 7.47 * math.Exp(-0.8711*math.Pow(sav, 0.55))
	e := 0.715 * math.Exp(-0.01094*sav)
	return c * math.Pow(mPerMinToFtPerMin*windSpeed, b) * math.Pow(betaRatio, -e)
}

// PropagatingFlux calculates the proportion of reaction intensity that heats
// adjacent fuel particles to ignition [unitless]. beta is the packing ratio.
// Rothermel (1972) Eq. 42; Thonicke et al. (2010) Eq. A2.
func PropagatingFlux(beta, sav float64) float64 {
	return math.Exp((0.792+3.7597*math.Sqrt(sav))*(beta+0.1)) / (192.0 + 7.9095*sav)
}

// ForwardRateOfSpread calculates the speed of the flaming front of a surface
// fire [m/min]. Returns 0 when the fuel bed is degenerate (non-positive bulk
// density, heating number, or heat of preignition). Thonicke et al. (2010)
// Eq. 9.
//
//	bulkDensity  fuel bulk density [kg/m³]
//	epsilon      effective heating number [unitless]
//	qIg          heat of preignition [kJ/kg]
//	iR           reaction intensity [kJ/m²/min]
//	xi           propagating flux [unitless]
//	phiWind      wind factor [unitless]
func ForwardRateOfSpread(bulkDensity, epsilon, qIg, iR, xi, phiWind float64) float64 {
	if bulkDensity <= 0.0 || epsilon <= 0.0 || qIg <= 0.0 {
		return 0.0
	}
	return (iR * xi * (1.0 + phiWind)) / (bulkDensity * epsilon * qIg)
}

// BackwardRateOfSpread calculates the upwind spread rate [m/min] from the
// forward rate. The decay uses the raw wind speed: backing spread is not
// sheltered by vegetation. Thonicke et al. (2010) Eq. 10, after the Canadian
// FBP System (1992).
func BackwardRateOfSpread(rosFront, windSpeed float64) float64 {
	return rosFront * math.Exp(-0.012*windSpeed)
}
