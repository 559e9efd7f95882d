package oddsmath

import "math"

// ImpliedProbability converts a decimal price into an implied probability
// percentage, rounded to 2 decimals. The second return value is false for
// zero, negative, or non-finite prices; absence is a signal, not an error.
func ImpliedProbability(price float64) (float64, bool) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return Round2(100 / price), true
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
