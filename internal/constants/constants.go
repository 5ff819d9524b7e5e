// Package constants holds the physical constants, empirical coefficients and
// unit conversion factors every formula in the module is computed from.
package constants

// RothfuszCoefficients are the Rothfusz heat index regression coefficients in
// term order {1, T, RH, T·RH, T², RH², T²·RH, T·RH², T²·RH²}. The tenth value
// is carried by the published table but is not part of the nine-term
// polynomial.
type RothfuszCoefficients [10]float64

// Table is the full set of constants. It is passed and returned by value so a
// Table held by a caller can never be changed behind its back.
type Table struct {
	// Magnus-Tetens
	MagnusA      float64 // dimensionless
	MagnusB      float64 // °C
	SVPReference float64 // hPa, saturation vapor pressure at 0 °C
	SVPBase      float64 // base of the exponent

	StandardPressure   float64 // hPa
	PressureCorrection float64 // dew point pressure correction coefficient

	GasConstant    float64 // J/(mol·K)
	MolarMassWater float64 // kg/mol
	MolarMassRatio float64 // water vapor / dry air
	HumidexOffset  float64
	KelvinOffset   float64

	// HumidityScale multiplies mixing ratio and absolute humidity. 1 reports
	// kg/kg and kg/m³, 1000 reports g/kg and g/m³.
	HumidityScale float64

	Rothfusz RothfuszCoefficients

	// Unit conversion factors. These are definitions, not measurements.
	PascalsPerHpa float64
	MmhgPerHpa    float64
	HpaPerInhg    float64
	KmphPerMps    float64
	MphPerKmph    float64
	MpsPerMph     float64
	KmphPerKnot   float64
	MphPerKnot    float64
}

// Default returns the reference table.
func Default() Table {
	return Table{
		MagnusA:      17.27,
		MagnusB:      237.7,
		SVPReference: 6.112,
		SVPBase:      10,

		StandardPressure:   1013.25,
		PressureCorrection: 0.190284,

		GasConstant:    8.314,
		MolarMassWater: 0.0180153,
		MolarMassRatio: 0.622,
		HumidexOffset:  10,
		KelvinOffset:   273.15,

		HumidityScale: 1,

		Rothfusz: RothfuszCoefficients{
			-42.379,
			2.04901523,
			10.14333127,
			-0.22475541,
			-6.83783e-3,
			-5.481717e-2,
			1.22874e-3,
			8.5282e-4,
			-1.99e-6,
			1.040e-8,
		},

		PascalsPerHpa: 100,
		MmhgPerHpa:    0.750062,
		HpaPerInhg:    33.8639,
		KmphPerMps:    3.6,
		MphPerKmph:    0.621371,
		MpsPerMph:     0.44704,
		KmphPerKnot:   1.852,
		MphPerKnot:    1.15078,
	}
}
