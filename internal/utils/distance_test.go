package utils

import "testing"

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12km", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
		{"0", 0},
		{"12", 12},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{" 7.25 ", 7.25},
		{"-3", -3},
	}

	for _, tt := range tests {
		if got := ParseDistance(tt.in); got != tt.want {
			t.Errorf("ParseDistance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
