package conversions

import "github.com/TheMlok/meteo-tools/internal/rounding"

// HpaToMmhg converts hectopascals to millimetres of mercury.
func HpaToMmhg(hpa float64) float64 {
	return rounding.Round4(hpa * factors.MmhgPerHpa)
}

// MmhgToHpa converts millimetres of mercury to hectopascals.
func MmhgToHpa(mmhg float64) float64 {
	return rounding.Round4(mmhg / factors.MmhgPerHpa)
}

// HpaToInhg converts hectopascals to inches of mercury.
func HpaToInhg(hpa float64) float64 {
	return rounding.Round4(hpa / factors.HpaPerInhg)
}

// InhgToHpa converts inches of mercury to hectopascals.
func InhgToHpa(inhg float64) float64 {
	return rounding.Round4(inhg * factors.HpaPerInhg)
}
