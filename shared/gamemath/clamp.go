package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproachZero reduces a countdown timer by dt, clamped at 0.
func ApproachZero(timer, dt float64) float64 {
	if timer <= dt {
		return 0
	}
	return timer - dt
}

// Lerp blends from a to b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle maps an angle into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	r := math.Remainder(a, 2*math.Pi)
	if r <= -math.Pi {
		return math.Pi
	}
	return r
}

// TurnToward rotates angle from toward to by at most maxStep radians.
func TurnToward(from, to, maxStep float64) float64 {
	diff := WrapAngle(to - from)
	if math.Abs(diff) <= maxStep {
		return to
	}
	if diff > 0 {
		return WrapAngle(from + maxStep)
	}
	return WrapAngle(from - maxStep)
}
