package conversions

import (
	"math"
	"testing"
)

func TestPressureConversions(t *testing.T) {
	tests := []struct {
		name     string
		convert  func(float64) float64
		input    float64
		expected float64
	}{
		{name: "standard hPa to mmHg", convert: HpaToMmhg, input: 1013.25, expected: 760.0003},
		{name: "1000 hPa to mmHg", convert: HpaToMmhg, input: 1000, expected: 750.062},
		{name: "mmHg to standard hPa", convert: MmhgToHpa, input: 760.0003, expected: 1013.25},
		{name: "mmHg to 1000 hPa", convert: MmhgToHpa, input: 750.062, expected: 1000},
		{name: "standard hPa to inHg", convert: HpaToInhg, input: 1013.25, expected: 29.9212},
		{name: "1000 hPa to inHg", convert: HpaToInhg, input: 1000, expected: 29.53},
		{name: "inHg to hPa", convert: InhgToHpa, input: 29.9212, expected: 1013.2485},
		{name: "30 inHg to hPa", convert: InhgToHpa, input: 30, expected: 1015.917},
		{name: "zero", convert: HpaToMmhg, input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.convert(tt.input)
			if result != tt.expected {
				t.Errorf("convert(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPressure_NaNPropagates(t *testing.T) {
	if result := HpaToInhg(math.NaN()); !math.IsNaN(result) {
		t.Errorf("HpaToInhg(NaN) = %v, want NaN", result)
	}
}
