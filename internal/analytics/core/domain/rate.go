package domain

import "math"

// Percent returns part/whole*100 with the denominator clamped to 1.
func Percent(part, whole int) float64 {
	if whole < 1 {
		whole = 1
	}
	return float64(part) / float64(whole) * 100
}

// Round2 rounds to two decimals, the precision every rate is reported with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
