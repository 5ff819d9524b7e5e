package calculations

import "github.com/TheMlok/meteo-tools/conversions"

// absoluteHumidity returns the mass of water vapor per volume of air, kg/m³
// unless the table scales it, from the ideal gas law applied to the vapor
// partial pressure.
func (c *Calculator) absoluteHumidity(celsius, relativeHumidity float64) float64 {
	vaporPa := c.actualVaporPressure(celsius, relativeHumidity) * c.table.PascalsPerHpa
	return vaporPa / (c.table.GasConstant * (celsius + c.table.KelvinOffset)) *
		c.table.MolarMassWater * c.table.HumidityScale
}

// CelsiusAbsoluteHumidity returns the absolute humidity for a temperature in
// °C.
func (c *Calculator) CelsiusAbsoluteHumidity(temperature, relativeHumidity float64) float64 {
	return c.result("absolute_humidity", c.absoluteHumidity(temperature, relativeHumidity),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// FahrenheitAbsoluteHumidity returns the absolute humidity for a temperature
// in °F.
func (c *Calculator) FahrenheitAbsoluteHumidity(temperature, relativeHumidity float64) float64 {
	celsius := conversions.FahrenheitToCelsius(temperature)
	return c.result("absolute_humidity", c.absoluteHumidity(celsius, relativeHumidity),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// CelsiusAbsoluteHumidity returns the absolute humidity for a temperature in
// °C.
func CelsiusAbsoluteHumidity(temperature, relativeHumidity float64) float64 {
	return std.CelsiusAbsoluteHumidity(temperature, relativeHumidity)
}

// FahrenheitAbsoluteHumidity returns the absolute humidity for a temperature
// in °F.
func FahrenheitAbsoluteHumidity(temperature, relativeHumidity float64) float64 {
	return std.FahrenheitAbsoluteHumidity(temperature, relativeHumidity)
}
