package util

import "math"

// Percent returns part/whole as a rounded integer percentage, 0 when whole is 0.
func Percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(part * 100 / whole))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
