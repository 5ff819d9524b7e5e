// Package types carries a single measurement in every unit the module
// converts between.
package types

import (
	"github.com/TheMlok/meteo-tools/conversions"
	"github.com/TheMlok/meteo-tools/internal/rounding"
)

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
	Kelvin     float64
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: conversions.CelsiusToFahrenheit(celsius),
		Kelvin:     conversions.CelsiusToKelvin(celsius),
	}
}

func NewTemperatureFromFahrenheit(fahrenheit float64) Temperature {
	return Temperature{
		Celsius:    conversions.FahrenheitToCelsius(fahrenheit),
		Fahrenheit: fahrenheit,
		Kelvin:     conversions.FahrenheitToKelvin(fahrenheit),
	}
}

func NewTemperatureFromKelvin(kelvin float64) Temperature {
	return Temperature{
		Celsius:    conversions.KelvinToCelsius(kelvin),
		Fahrenheit: conversions.KelvinToFahrenheit(kelvin),
		Kelvin:     kelvin,
	}
}

// Rounded returns t with every unit rounded to the nearest whole degree.
func (t Temperature) Rounded() Temperature {
	return Temperature{
		Celsius:    rounding.RoundInt(t.Celsius),
		Fahrenheit: rounding.RoundInt(t.Fahrenheit),
		Kelvin:     rounding.RoundInt(t.Kelvin),
	}
}
