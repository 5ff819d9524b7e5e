package types

import "github.com/TheMlok/meteo-tools/calculations"

// Observation is one set of raw station measurements.
type Observation struct {
	Temperature      Temperature
	RelativeHumidity float64 // percent
	Pressure         Pressure
}

// Conditions are the quantities derived from an Observation.
type Conditions struct {
	DewPoint         Temperature
	HeatIndex        Temperature
	Humidex          float64
	MixingRatio      float64 // kg/kg at HumidityScale 1
	AbsoluteHumidity float64 // kg/m³ at HumidityScale 1
}

func NewObservation(temperature Temperature, relativeHumidity float64, pressure Pressure) Observation {
	return Observation{
		Temperature:      temperature,
		RelativeHumidity: relativeHumidity,
		Pressure:         pressure,
	}
}

// Derive computes the derived conditions in Celsius at the observed
// pressure. A nil calc uses calculations.Default().
func (o Observation) Derive(calc *calculations.Calculator) Conditions {
	if calc == nil {
		calc = calculations.Default()
	}

	t := o.Temperature.Celsius
	rh := o.RelativeHumidity
	p := o.Pressure.Hpa

	return Conditions{
		DewPoint:         NewTemperatureFromCelsius(calc.CelsiusDewPoint(t, rh, p)),
		HeatIndex:        NewTemperatureFromCelsius(calc.CelsiusHeatIndex(t, rh)),
		Humidex:          calc.CelsiusHumidex(t, rh, p),
		MixingRatio:      calc.CelsiusMixingRatio(t, rh, p),
		AbsoluteHumidity: calc.CelsiusAbsoluteHumidity(t, rh),
	}
}
