package summary

import "math"

// Rate returns part / whole, or NaN when whole is zero. NaN is the defined
// sentinel for undefined rates; callers render it instead of guarding.
func Rate(part, whole float64) float64 {
	if whole == 0 {
		return math.NaN()
	}
	return part / whole
}

// RoundPercent rounds a percentage to two decimal places. NaN passes
// through.
func RoundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
