package gamemath

import "github.com/tanema/gween/ease"

// ChargeCurve shapes a linear charge fraction in [0, 1] through an easing
// function. A nil curve is linear.
func ChargeCurve(curve ease.TweenFunc, fraction float64) float64 {
	fraction = Clamp(fraction, 0, 1)
	if curve == nil || fraction == 1 {
		return fraction
	}
	return Clamp(float64(curve(float32(fraction), 0, 1, 1)), 0, 1)
}

// ChargeRatio returns how far a hold of held seconds has progressed toward
// full, clamped to [0, 1].
func ChargeRatio(held, full float64) float64 {
	if full <= 0 {
		return 1
	}
	return Clamp(held/full, 0, 1)
}
