package gamemath

import "math"

// Clamp limits v to [lo, hi]. When hi < lo the range collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a speed to [0, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < 0 {
		return 0
	}
	return speed
}

// ApproachZero decrements a frame timer without going below zero.
func ApproachZero(timer int) int {
	if timer > 0 {
		return timer - 1
	}
	return 0
}

// ScaleBoost multiplies a boost by factor, capping the result at limit.
// A boost already above limit is left alone so a weaker hit never undoes a
// stronger one.
func ScaleBoost(boost, factor, limit float64) float64 {
	next := boost * factor
	if next <= limit {
		return next
	}
	return math.Max(limit, boost)
}
