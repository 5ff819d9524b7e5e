package calculations

import (
	"math"

	"github.com/TheMlok/meteo-tools/conversions"
)

// dewPoint is the unrounded Magnus-Tetens dew point in °C.
func (c *Calculator) dewPoint(celsius, relativeHumidity float64) float64 {
	gamma := c.magnusExponent(celsius) + math.Log(relativeHumidity/100)
	return c.table.MagnusB * gamma / (c.table.MagnusA - gamma)
}

// correctForPressure scales a dew point for a station pressure in hPa. At
// exactly standard pressure the dew point is returned untouched.
func (c *Calculator) correctForPressure(dewPoint, pressure float64) float64 {
	standard := c.table.StandardPressure
	if pressure == standard {
		return dewPoint
	}
	return dewPoint / math.Abs(1-(pressure-standard)/standard*c.table.PressureCorrection)
}

// CommonCelsiusDewPoint returns the dew point in °C at standard pressure.
func (c *Calculator) CommonCelsiusDewPoint(temperature, relativeHumidity float64) float64 {
	return c.result("dew_point", c.dewPoint(temperature, relativeHumidity),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// CelsiusDewPoint returns the dew point in °C corrected for pressure in hPa.
func (c *Calculator) CelsiusDewPoint(temperature, relativeHumidity, pressure float64) float64 {
	dewPoint := c.correctForPressure(c.dewPoint(temperature, relativeHumidity), pressure)
	return c.result("dew_point", dewPoint,
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonFahrenheitDewPoint returns the dew point in °F at standard pressure
// for a temperature in °F.
func (c *Calculator) CommonFahrenheitDewPoint(temperature, relativeHumidity float64) float64 {
	dewPoint := c.dewPoint(conversions.FahrenheitToCelsius(temperature), relativeHumidity)
	return c.result("dew_point", conversions.CelsiusToFahrenheit(dewPoint),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// FahrenheitDewPoint returns the dew point in °F for a temperature in °F,
// corrected for pressure in hPa. The correction is applied in °C.
func (c *Calculator) FahrenheitDewPoint(temperature, relativeHumidity, pressure float64) float64 {
	dewPoint := c.dewPoint(conversions.FahrenheitToCelsius(temperature), relativeHumidity)
	dewPoint = c.correctForPressure(dewPoint, pressure)
	return c.result("dew_point", conversions.CelsiusToFahrenheit(dewPoint),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonCelsiusDewPoint returns the dew point in °C at standard pressure.
func CommonCelsiusDewPoint(temperature, relativeHumidity float64) float64 {
	return std.CommonCelsiusDewPoint(temperature, relativeHumidity)
}

// CelsiusDewPoint returns the dew point in °C corrected for pressure in hPa.
func CelsiusDewPoint(temperature, relativeHumidity, pressure float64) float64 {
	return std.CelsiusDewPoint(temperature, relativeHumidity, pressure)
}

// CommonFahrenheitDewPoint returns the dew point in °F at standard pressure.
func CommonFahrenheitDewPoint(temperature, relativeHumidity float64) float64 {
	return std.CommonFahrenheitDewPoint(temperature, relativeHumidity)
}

// FahrenheitDewPoint returns the dew point in °F corrected for pressure in hPa.
func FahrenheitDewPoint(temperature, relativeHumidity, pressure float64) float64 {
	return std.FahrenheitDewPoint(temperature, relativeHumidity, pressure)
}
