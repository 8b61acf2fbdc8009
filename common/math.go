package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Damp decays v exponentially toward zero at the given rate over dt seconds,
// snapping to exactly zero once below epsilon so idle velocity cannot creep
// forever.
func Damp(v, rate, epsilon, dt float64) float64 {
	v *= math.Exp(-rate * dt)
	if math.Abs(v) < epsilon {
		return 0
	}
	return v
}

// DampTo decays the distance between v and target with the same policy.
func DampTo(v, target, rate, epsilon, dt float64) float64 {
	return target + Damp(v-target, rate, epsilon, dt)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
