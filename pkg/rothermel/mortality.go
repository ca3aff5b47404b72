package rothermel

import "math"

// ScorchHeight calculates the height of lethal canopy scorch [m] from the
// fire intensity [kW/m]. alphaSH is a vegetation-specific scalar. Van
// Wagner (1973) Eq. 8; Thonicke et al. (2010) Eq. 16.
func ScorchHeight(alphaSH, fireIntensity float64) float64 {
	if fireIntensity <= 0.0 {
		return 0.0
	}
	return alphaSH * math.Pow(fireIntensity, 0.667)
}

// CrownFractionBurnt calculates the fraction of a woody plant's crown
// scorched by a surface fire [0-1], from the scorch height, tree height,
// and crown depth, all in meters. Thonicke et al. (2010) Eq. 17.
func CrownFractionBurnt(scorchHeight, treeHeight, crownDepth float64) float64 {
	if crownDepth <= 0.0 {
		return 0.0
	}
	frac := (scorchHeight - treeHeight + crownDepth) / crownDepth
	return math.Min(1.0, math.Max(0.0, frac))
}

// BarkThickness calculates bark thickness [cm] as a species-specific scalar
// times diameter at breast height [cm]. Thonicke et al. (2010) Eq. 21.
func BarkThickness(barkScalar, dbh float64) float64 {
	return barkScalar * dbh
}

// CriticalResidenceTime calculates the fire residence time beyond which the
// cambium is damaged [min]. Thonicke et al. (2010) Eq. 20.
func CriticalResidenceTime(barkThickness float64) float64 {
	return 2.9 * barkThickness * barkThickness
}

// CambialMortality calculates the probability of tree death from cambial
// heat damage [0-1], given the species bark scalar [cm/cm], diameter at
// breast height [cm], and the residence time of the fire tauL [min].
// Thonicke et al. (2010) Eq. 19.
func CambialMortality(barkScalar, dbh, tauL float64) float64 {
	bark := BarkThickness(barkScalar, dbh)
	tauC := CriticalResidenceTime(bark)
	return cambialMortalityRate(tauL / tauC)
}

// cambialMortalityRate maps the relative residence time tauR = tauL/tauC to
// a mortality rate. The piecewise form is taken as published: just above
// the 0.22 threshold the linear branch is slightly negative, which the
// combined mortality clamp absorbs.
func cambialMortalityRate(tauR float64) float64 {
	switch {
	case tauR >= 2.0:
		return 1.0
	case tauR > 0.22:
		return 0.563*tauR - 0.125
	default:
		return 0.0
	}
}

// CrownFireMortality calculates the probability of tree death from crown
// scorch [0-1]. crownKill is a species parameter and fracBurned the crown
// fraction scorched. Thonicke et al. (2010) Eq. 22.
func CrownFireMortality(crownKill, fracBurned float64) float64 {
	mortality := crownKill * math.Pow(fracBurned, 3.0)
	return math.Min(1.0, math.Max(0.0, mortality))
}

// TotalFireMortality combines crown scorch and cambial damage mortality
// into a single probability of death [0-1], treating the two causes as
// independent. Thonicke et al. (2010) Eq. 18.
func TotalFireMortality(crownFireMort, cambialDamageMort float64) float64 {
	if crownFireMort >= 1.0 || cambialDamageMort >= 1.0 {
		return 1.0
	}
	mortality := crownFireMort + cambialDamageMort - crownFireMort*cambialDamageMort
	return math.Min(1.0, math.Max(0.0, mortality))
}
