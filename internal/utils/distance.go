package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDistance coerces a free-text kilometre field into a number the fare
// calculator can accept. Empty, malformed or non-finite input becomes 0;
// a comma decimal separator is tolerated ("12,5" == "12.5"). Negative
// values pass through unchanged, the calculator prices them at zero.
func ParseDistance(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
