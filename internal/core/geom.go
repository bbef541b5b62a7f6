// Package core provides the fundamental types of the toy: vector math, the
// cell screen buffer and runtime configuration. It has no dependency on
// Bubble Tea so the sprite logic stays pure and testable.
package core

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
