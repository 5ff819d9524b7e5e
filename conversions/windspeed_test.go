package conversions

import "testing"

func TestWindSpeedConversions(t *testing.T) {
	tests := []struct {
		name     string
		convert  func(float64) float64
		input    float64
		expected float64
	}{
		{name: "m/s to km/h", convert: MpsToKmph, input: 10, expected: 36},
		{name: "km/h to m/s", convert: KmphToMps, input: 36, expected: 10},
		{name: "negative m/s to km/h", convert: MpsToKmph, input: -10, expected: -36},
		{name: "km/h to mph", convert: KmphToMph, input: 100, expected: 62.1371},
		{name: "mph to km/h", convert: MphToKmph, input: 62.1371, expected: 100},
		{name: "mph to m/s", convert: MphToMps, input: 10, expected: 4.4704},
		{name: "m/s to mph", convert: MpsToMph, input: 10, expected: 22.3694},
		{name: "m/s to mph back", convert: MpsToMph, input: 4.4704, expected: 10},
		{name: "km/h to knots", convert: KmphToKnots, input: 100, expected: 53.9957},
		{name: "knots to km/h", convert: KnotsToKmph, input: 54, expected: 100.008},
		{name: "mph to knots", convert: MphToKnots, input: 100, expected: 86.8976},
		{name: "knots to mph", convert: KnotsToMph, input: 50, expected: 57.539},
		{name: "m/s to knots", convert: MpsToKnots, input: 10, expected: 19.4384},
		{name: "knots to m/s", convert: KnotsToMps, input: 20, expected: 10.2889},
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

func TestMpsToKmph_Linear(t *testing.T) {
	inputs := []float64{0, 0.5, 1, 2.5, 7.2}

	for _, x := range inputs {
		single := MpsToKmph(x)
		double := MpsToKmph(2 * x)
		if double != 2*single {
			t.Errorf("MpsToKmph(%v) = %v, want 2*MpsToKmph(%v) = %v", 2*x, double, x, 2*single)
		}
	}
}

func TestMpsToKmph_Monotonic(t *testing.T) {
	previous := MpsToKmph(-50)
	for x := -49.0; x <= 50; x += 0.25 {
		current := MpsToKmph(x)
		if current < previous {
			t.Errorf("MpsToKmph(%v) = %v, smaller than MpsToKmph(%v) = %v", x, current, x-0.25, previous)
		}
		previous = current
	}
}
