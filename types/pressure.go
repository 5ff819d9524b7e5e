package types

import (
	"github.com/TheMlok/meteo-tools/conversions"
	"github.com/TheMlok/meteo-tools/internal/constants"
)

// Pressure is an atmospheric pressure. Mmhg and Inhg are rounded to 4
// decimal places.
type Pressure struct {
	Hpa  float64
	Mmhg float64
	Inhg float64
}

func NewPressureFromHpa(hpa float64) Pressure {
	return Pressure{
		Hpa:  hpa,
		Mmhg: conversions.HpaToMmhg(hpa),
		Inhg: conversions.HpaToInhg(hpa),
	}
}

func NewPressureFromMmhg(mmhg float64) Pressure {
	hpa := conversions.MmhgToHpa(mmhg)
	return Pressure{
		Hpa:  hpa,
		Mmhg: mmhg,
		Inhg: conversions.HpaToInhg(hpa),
	}
}

func NewPressureFromInhg(inhg float64) Pressure {
	hpa := conversions.InhgToHpa(inhg)
	return Pressure{
		Hpa:  hpa,
		Mmhg: conversions.HpaToMmhg(hpa),
		Inhg: inhg,
	}
}

// StandardPressure returns the standard sea level atmosphere.
func StandardPressure() Pressure {
	return NewPressureFromHpa(constants.Default().StandardPressure)
}
