package rothermel

import "math"

// lbTreeThreshold is the tree cover fraction above which the forested
// length-to-breadth form applies.
const lbTreeThreshold = 0.55

// FireDuration calculates how long a fire burns [min] as a declining
// logistic in the fire danger index. maxDuration is the longest possible
// duration [min] and durationSlope the (negative) shape parameter.
// Thonicke et al. (2010) Eq. 14.
func FireDuration(fdi, maxDuration, durationSlope float64) float64 {
	return (maxDuration + 1.0) / (1.0 + maxDuration*math.Exp(durationSlope*fdi))
}

// LengthToBreadthRatio calculates the elongation of the elliptical fire
// perimeter [unitless] from the effective windspeed [m/min] and tree cover
// fraction. Below 1 km/h of wind the fire is circular. Forested and open
// landscapes use different empirical fits.
func LengthToBreadthRatio(effectiveWindspeed, treeFraction float64) float64 {
	windKmHr := effectiveWindspeed / 1000.0 * 60.0
	if windKmHr < 1.0 {
		return 1.0
	}
	if treeFraction > lbTreeThreshold {
		return 1.0 + 8.729*math.Pow(1.0-math.Exp(-0.03*windKmHr), 2.155)
	}
	return 1.1 * math.Pow(windKmHr, 0.464)
}

// FireSize calculates the area of the elliptical fire scar [m²] from the
// length-to-breadth ratio, the backward and forward rates of spread [m/min],
// and the fire duration [min]. Arora and Boer (2005) Eq. 14.
func FireSize(lengthToBreadth, rosBack, rosForward, duration float64) float64 {
	if lengthToBreadth < 0.0 {
		return 0.0
	}
	distBack := rosBack * duration
	distForward := rosForward * duration
	return (math.Pi / (4.0 * lengthToBreadth)) * math.Pow(distForward+distBack, 2.0)
}

// AreaBurnt calculates the daily burnt area [m²/km²/day] from the size of a
// single fire [m²], the ignition density [/km²/day], and the fire danger
// index [0-1].
func AreaBurnt(fireSize, numIgnitions, fdi float64) float64 {
	return fireSize * numIgnitions * fdi
}

// FireIntensity calculates the surface fireline intensity [kW/m] from the
// fuel consumed [kg/m²], the rate of spread [m/s], and the fuel heat
// content [kJ/kg]. Thonicke et al. (2010) Eq. 15.
func FireIntensity(fuelConsumed, ros, fuelEnergy float64) float64 {
	return fuelEnergy * fuelConsumed * ros
}
