package calculations

import "math"

// magnusExponent is the Magnus-Tetens exponent A*T/(B+T) for T in °C.
func (c *Calculator) magnusExponent(celsius float64) float64 {
	return c.table.MagnusA * celsius / (c.table.MagnusB + celsius)
}

// saturationVaporPressure returns the saturation vapor pressure in hPa over
// water at celsius.
func (c *Calculator) saturationVaporPressure(celsius float64) float64 {
	exponent := c.magnusExponent(celsius)
	if c.table.SVPBase == math.E {
		return c.table.SVPReference * math.Exp(exponent)
	}
	return c.table.SVPReference * math.Pow(c.table.SVPBase, exponent)
}

// actualVaporPressure returns the partial pressure of water vapor in hPa.
func (c *Calculator) actualVaporPressure(celsius, relativeHumidity float64) float64 {
	return c.saturationVaporPressure(celsius) * relativeHumidity / 100
}
