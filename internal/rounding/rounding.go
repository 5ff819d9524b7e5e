// Package rounding normalises floating point noise in formula results.
package rounding

import "math"

const fourPlaces = 10000

// Round4 rounds x to 4 decimal places, halves away from zero.
func Round4(x float64) float64 {
	return math.Round(x*fourPlaces) / fourPlaces
}

// RoundInt rounds x to the nearest integer, halves away from zero.
func RoundInt(x float64) float64 {
	return math.Round(x)
}
