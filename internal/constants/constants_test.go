package constants

import "testing"

func TestDefault(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"magnus a", table.MagnusA, 17.27},
		{"magnus b", table.MagnusB, 237.7},
		{"svp reference", table.SVPReference, 6.112},
		{"svp base", table.SVPBase, 10},
		{"standard pressure", table.StandardPressure, 1013.25},
		{"pressure correction", table.PressureCorrection, 0.190284},
		{"gas constant", table.GasConstant, 8.314},
		{"molar mass water", table.MolarMassWater, 0.0180153},
		{"kelvin offset", table.KelvinOffset, 273.15},
		{"humidity scale", table.HumidityScale, 1},
		{"mmhg per hpa", table.MmhgPerHpa, 0.750062},
		{"hpa per inhg", table.HpaPerInhg, 33.8639},
		{"kmph per knot", table.KmphPerKnot, 1.852},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Default() %s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first.SVPReference = 6.11
	first.Rothfusz[0] = 0

	second := Default()
	if second.SVPReference != 6.112 {
		t.Errorf("Default().SVPReference = %v after mutating another copy, want 6.112", second.SVPReference)
	}
	if second.Rothfusz[0] != -42.379 {
		t.Errorf("Default().Rothfusz[0] = %v after mutating another copy, want -42.379", second.Rothfusz[0])
	}
}
