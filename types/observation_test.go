package types

import (
	"testing"

	"github.com/TheMlok/meteo-tools/calculations"
	"github.com/TheMlok/meteo-tools/internal/constants"
	"github.com/google/go-cmp/cmp"
)

func TestObservation_Derive(t *testing.T) {
	observation := NewObservation(NewTemperatureFromCelsius(22.5), 62.4, NewPressureFromHpa(1000))

	expected := Conditions{
		DewPoint:         NewTemperatureFromCelsius(14.9106),
		HeatIndex:        NewTemperatureFromCelsius(24.4299),
		Humidex:          25.2281,
		MixingRatio:      0.0838,
		AbsoluteHumidity: 0.0871,
	}

	if diff := cmp.Diff(expected, observation.Derive(nil), approx); diff != "" {
		t.Errorf("Derive(nil) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expected, observation.Derive(calculations.Default()), approx); diff != "" {
		t.Errorf("Derive(Default()) mismatch (-want +got):\n%s", diff)
	}
}

func TestObservation_DeriveFromFahrenheit(t *testing.T) {
	fromFahrenheit := NewObservation(NewTemperatureFromFahrenheit(72.5), 62.4, StandardPressure())
	fromCelsius := NewObservation(NewTemperatureFromCelsius(22.5), 62.4, StandardPressure())

	if diff := cmp.Diff(fromCelsius.Derive(nil), fromFahrenheit.Derive(nil), approx); diff != "" {
		t.Errorf("Derive mismatch between units (-celsius +fahrenheit):\n%s", diff)
	}
}

func TestObservation_DeriveWithCustomCalculator(t *testing.T) {
	table := constants.Default()
	table.SVPReference = 6.11
	table.HumidityScale = 1000
	calc := calculations.New(table, nil)

	observation := NewObservation(NewTemperatureFromCelsius(22.5), 62.4, StandardPressure())
	conditions := observation.Derive(calc)

	if conditions.MixingRatio != 82.566 {
		t.Errorf("MixingRatio = %v, want 82.566", conditions.MixingRatio)
	}
	if conditions.AbsoluteHumidity != 87.0262 {
		t.Errorf("AbsoluteHumidity = %v, want 87.0262", conditions.AbsoluteHumidity)
	}
	// dew point does not depend on the saturation vapor pressure reference
	if conditions.DewPoint.Celsius != 14.9477 {
		t.Errorf("DewPoint.Celsius = %v, want 14.9477", conditions.DewPoint.Celsius)
	}
}
