package calculations

import "github.com/TheMlok/meteo-tools/conversions"

// mixingRatio returns the mass of water vapor per mass of dry air, kg/kg
// unless the table scales it.
func (c *Calculator) mixingRatio(celsius, relativeHumidity, pressure float64) float64 {
	vapor := c.actualVaporPressure(celsius, relativeHumidity)
	return c.table.HumidityScale * c.table.MolarMassRatio * vapor / (pressure - vapor)
}

// CommonCelsiusMixingRatio returns the mixing ratio at standard pressure.
func (c *Calculator) CommonCelsiusMixingRatio(temperature, relativeHumidity float64) float64 {
	return c.result("mixing_ratio", c.mixingRatio(temperature, relativeHumidity, c.table.StandardPressure),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// CelsiusMixingRatio returns the mixing ratio at pressure in hPa.
func (c *Calculator) CelsiusMixingRatio(temperature, relativeHumidity, pressure float64) float64 {
	return c.result("mixing_ratio", c.mixingRatio(temperature, relativeHumidity, pressure),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonFahrenheitMixingRatio returns the mixing ratio at standard
// pressure for a temperature in °F.
func (c *Calculator) CommonFahrenheitMixingRatio(temperature, relativeHumidity float64) float64 {
	celsius := conversions.FahrenheitToCelsius(temperature)
	return c.result("mixing_ratio", c.mixingRatio(celsius, relativeHumidity, c.table.StandardPressure),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// FahrenheitMixingRatio returns the mixing ratio at pressure in hPa
// for a temperature in °F.
func (c *Calculator) FahrenheitMixingRatio(temperature, relativeHumidity, pressure float64) float64 {
	celsius := conversions.FahrenheitToCelsius(temperature)
	return c.result("mixing_ratio", c.mixingRatio(celsius, relativeHumidity, pressure),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
		"pressure", pressure,
	)
}

// CommonCelsiusMixingRatio returns the mixing ratio at standard pressure.
func CommonCelsiusMixingRatio(temperature, relativeHumidity float64) float64 {
	return std.CommonCelsiusMixingRatio(temperature, relativeHumidity)
}

// CelsiusMixingRatio returns the mixing ratio at pressure in hPa.
func CelsiusMixingRatio(temperature, relativeHumidity, pressure float64) float64 {
	return std.CelsiusMixingRatio(temperature, relativeHumidity, pressure)
}

// CommonFahrenheitMixingRatio returns the mixing ratio at standard
// pressure for a temperature in °F.
func CommonFahrenheitMixingRatio(temperature, relativeHumidity float64) float64 {
	return std.CommonFahrenheitMixingRatio(temperature, relativeHumidity)
}

// FahrenheitMixingRatio returns the mixing ratio at pressure in hPa
// for a temperature in °F.
func FahrenheitMixingRatio(temperature, relativeHumidity, pressure float64) float64 {
	return std.FahrenheitMixingRatio(temperature, relativeHumidity, pressure)
}
