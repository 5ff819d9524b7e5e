// Package conversions converts temperature, pressure and wind speed values
// between units.
//
// Temperature conversions are exact and never rounded. Pressure and wind
// speed results are rounded to 4 decimal places. Inputs are not validated:
// NaN and infinities pass straight through.
package conversions

import "github.com/TheMlok/meteo-tools/internal/constants"

var factors = constants.Default()
