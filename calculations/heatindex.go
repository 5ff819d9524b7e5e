package calculations

import "github.com/TheMlok/meteo-tools/conversions"

// rothfusz evaluates the Rothfusz regression for °F and RH in percent.
func (c *Calculator) rothfusz(t, rh float64) float64 {
	k := c.table.Rothfusz
	return k[0] +
		k[1]*t +
		k[2]*rh +
		k[3]*t*rh +
		k[4]*t*t +
		k[5]*rh*rh +
		k[6]*t*t*rh +
		k[7]*t*rh*rh +
		k[8]*t*t*rh*rh
}

// FahrenheitHeatIndex returns the heat index in °F.
func (c *Calculator) FahrenheitHeatIndex(temperature, relativeHumidity float64) float64 {
	return c.result("heat_index", c.rothfusz(temperature, relativeHumidity),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// CelsiusHeatIndex returns the heat index in °C. The regression itself is
// evaluated in °F.
func (c *Calculator) CelsiusHeatIndex(temperature, relativeHumidity float64) float64 {
	heatIndex := c.rothfusz(conversions.CelsiusToFahrenheit(temperature), relativeHumidity)
	return c.result("heat_index", conversions.FahrenheitToCelsius(heatIndex),
		"temperature", temperature,
		"relative_humidity", relativeHumidity,
	)
}

// FahrenheitHeatIndex returns the heat index in °F.
func FahrenheitHeatIndex(temperature, relativeHumidity float64) float64 {
	return std.FahrenheitHeatIndex(temperature, relativeHumidity)
}

// CelsiusHeatIndex returns the heat index in °C.
func CelsiusHeatIndex(temperature, relativeHumidity float64) float64 {
	return std.CelsiusHeatIndex(temperature, relativeHumidity)
}
