package calculations

import "github.com/TheMlok/meteo-tools/conversions"

// humidex adds 5/9 of the dew point excess over the offset to temperature.
// Both arguments share a unit.
func (c *Calculator) humidex(temperature, dewPoint float64) float64 {
	return temperature + 5.0/9.0*(dewPoint-c.table.HumidexOffset)
}

// CommonCelsiusHumidex returns the humidex for °C using the dew point at
// standard pressure.
func (c *Calculator) CommonCelsiusHumidex(temperature, relativeHumidity float64) float64 {
	dewPoint := c.dewPoint(temperature, relativeHumidity)
	return c.result("humidex", c.humidex(temperature, dewPoint),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// CelsiusHumidex returns the humidex for °C using the pressure corrected dew
// point.
func (c *Calculator) CelsiusHumidex(temperature, relativeHumidity, pressure float64) float64 {
	dewPoint := c.correctForPressure(c.dewPoint(temperature, relativeHumidity), pressure)
	return c.result("humidex", c.humidex(temperature, dewPoint),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonFahrenheitHumidex returns the humidex for °F using the dew point at
// standard pressure, expressed in °F.
func (c *Calculator) CommonFahrenheitHumidex(temperature, relativeHumidity float64) float64 {
	dewPoint := c.dewPoint(conversions.FahrenheitToCelsius(temperature), relativeHumidity)
	return c.result("humidex", c.humidex(temperature, conversions.CelsiusToFahrenheit(dewPoint)),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// FahrenheitHumidex returns the humidex for °F using the pressure corrected
// dew point, expressed in °F.
func (c *Calculator) FahrenheitHumidex(temperature, relativeHumidity, pressure float64) float64 {
	dewPoint := c.dewPoint(conversions.FahrenheitToCelsius(temperature), relativeHumidity)
	dewPoint = c.correctForPressure(dewPoint, pressure)
	return c.result("humidex", c.humidex(temperature, conversions.CelsiusToFahrenheit(dewPoint)),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonCelsiusHumidex returns the humidex for °C at standard pressure.
func CommonCelsiusHumidex(temperature, relativeHumidity float64) float64 {
	return std.CommonCelsiusHumidex(temperature, relativeHumidity)
}

// CelsiusHumidex returns the humidex for °C at pressure in hPa.
func CelsiusHumidex(temperature, relativeHumidity, pressure float64) float64 {
	return std.CelsiusHumidex(temperature, relativeHumidity, pressure)
}

// CommonFahrenheitHumidex returns the humidex for °F at standard pressure.
func CommonFahrenheitHumidex(temperature, relativeHumidity float64) float64 {
	return std.CommonFahrenheitHumidex(temperature, relativeHumidity)
}

// FahrenheitHumidex returns the humidex for °F at pressure in hPa.
func FahrenheitHumidex(temperature, relativeHumidity, pressure float64) float64 {
	return std.FahrenheitHumidex(temperature, relativeHumidity, pressure)
}
