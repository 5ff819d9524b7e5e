package conversions

import "github.com/TheMlok/meteo-tools/internal/rounding"

// MpsToKmph converts metres per second to kilometres per hour.
func MpsToKmph(mps float64) float64 {
	return rounding.Round4(mps * factors.KmphPerMps)
}

// KmphToMps converts kilometres per hour to metres per second.
func KmphToMps(kmph float64) float64 {
	return rounding.Round4(kmph / factors.KmphPerMps)
}

// KmphToMph converts kilometres per hour to miles per hour.
func KmphToMph(kmph float64) float64 {
	return rounding.Round4(kmph * factors.MphPerKmph)
}

// MphToKmph converts miles per hour to kilometres per hour.
func MphToKmph(mph float64) float64 {
	return rounding.Round4(mph / factors.MphPerKmph)
}

// MphToMps converts miles per hour to metres per second.
func MphToMps(mph float64) float64 {
	return rounding.Round4(mph * factors.MpsPerMph)
}

// MpsToMph converts metres per second to miles per hour by way of km/h.
func MpsToMph(mps float64) float64 {
	return rounding.Round4(mps * factors.KmphPerMps * factors.MphPerKmph)
}

// KmphToKnots converts kilometres per hour to knots.
func KmphToKnots(kmph float64) float64 {
	return rounding.Round4(kmph / factors.KmphPerKnot)
}

// KnotsToKmph converts knots to kilometres per hour.
func KnotsToKmph(knots float64) float64 {
	return rounding.Round4(knots * factors.KmphPerKnot)
}

// MphToKnots converts miles per hour to knots.
func MphToKnots(mph float64) float64 {
	return rounding.Round4(mph / factors.MphPerKnot)
}

// KnotsToMph converts knots to miles per hour.
func KnotsToMph(knots float64) float64 {
	return rounding.Round4(knots * factors.MphPerKnot)
}

// MpsToKnots converts metres per second to knots by way of km/h.
func MpsToKnots(mps float64) float64 {
	return rounding.Round4(mps * factors.KmphPerMps / factors.KmphPerKnot)
}

// KnotsToMps converts knots to metres per second by way of km/h.
func KnotsToMps(knots float64) float64 {
	return rounding.Round4(knots * factors.KmphPerKnot / factors.KmphPerMps)
}
