// Package calculations derives dew point, heat index, humidex, mixing ratio
// and absolute humidity from temperature, relative humidity and pressure.
//
// Every formula is a pure function of its arguments. Results are rounded to 4
// decimal places; invalid inputs (RH <= 0, pressure equal to the vapor
// pressure, temperatures below absolute zero) are not rejected and yield NaN
// or an infinity.
//
// The package-level functions use the reference constants. Build a
// Calculator with New to compute against a different constants.Table.
package calculations

import (
	"log/slog"
	"math"

	"github.com/TheMlok/meteo-tools/internal/constants"
	"github.com/TheMlok/meteo-tools/internal/rounding"
)

// Calculator evaluates the formulas against one constants table. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	table  constants.Table
	logger *slog.Logger
}

var std = New(constants.Default(), nil)

// New creates a Calculator for table. A nil logger discards everything.
func New(table constants.Table, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Calculator{
		table:  table,
		logger: logger.With("component", "calculator"),
	}
}

// Default returns the Calculator behind the package-level functions.
func Default() *Calculator {
	return std
}

// Table returns a copy of the constants the Calculator uses.
func (c *Calculator) Table() constants.Table {
	return c.table
}

// result rounds a formula value and reports it when it is not finite.
func (c *Calculator) result(formula string, value float64, inputs ...any) float64 {
	value = rounding.Round4(value)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		c.logger.Debug("non-finite result",
			append([]any{"formula", formula, "result", value}, inputs...)...,
		)
	}
	return value
}
