package layout

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "₹0"},
		{"under thousand", 999, "₹999"},
		{"thousand", 1000, "₹1,000"},
		{"ten thousand", 10000, "₹10,000"},
		{"lakh", 100000, "₹1,00,000"},
		{"example gross", 750000, "₹7,50,000"},
		{"example net", 650000, "₹6,50,000"},
		{"crore", 10000000, "₹1,00,00,000"},
		{"rounds down", 90000.4, "₹90,000"},
		{"rounds up", 90000.5, "₹90,001"},
		{"negative", -750000, "-₹7,50,000"},
		{"negative fraction rounding to zero", -0.4, "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.in)
			if got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatINRIdempotent(t *testing.T) {
	// Formatting must not depend on prior calls.
	inputs := []float64{750000, 1234567, 0, 99, -5000}
	for _, v := range inputs {
		first := FormatINR(v)
		for i := 0; i < 3; i++ {
			if got := FormatINR(v); got != first {
				t.Fatalf("FormatINR(%v) changed between calls: %q then %q", v, first, got)
			}
		}
	}
}
