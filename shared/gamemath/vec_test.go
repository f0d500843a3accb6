package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
	"pgregory.net/rapid"
)

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.Equal(t, Vec2{}, Vec2{1e-12, -1e-12}.Normalize())

	_, ok := Vec2{}.Angle()
	assert.False(t, ok)
}

func TestNormalizeDiagonal(t *testing.T) {
	n := V(1, 1).Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, n.X, 1e-12)
}

func TestNormalizeIsUnitLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := V(rapid.Float64Range(-1e6, 1e6).Draw(t, "x"), rapid.Float64Range(-1e6, 1e6).Draw(t, "y"))
		n := v.Normalize()
		if v.Len() < Epsilon {
			if !n.IsZero() {
				t.Fatalf("expected zero vector, got %v", n)
			}
			return
		}
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Fatalf("normalized length %f", n.Len())
		}
	})
}

func TestReflect(t *testing.T) {
	v := V(3, -4).Reflect(V(0, 1))
	assert.InDelta(t, 3, v.X, 1e-12)
	assert.InDelta(t, 4, v.Y, 1e-12)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0, WrapAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
	assert.True(t, math.IsNaN(WrapAngle(math.NaN())))
}

func TestTurnToward(t *testing.T) {
	assert.InDelta(t, 0.5, TurnToward(0, 2, 0.5), 1e-12)
	assert.InDelta(t, 2, TurnToward(1.9, 2, 0.5), 1e-12)
	// Shortest way round crosses Pi.
	assert.InDelta(t, WrapAngle(math.Pi-0.1+0.2), TurnToward(math.Pi-0.1, -math.Pi+0.1, 0.2), 1e-12)
}

func TestApproachZero(t *testing.T) {
	assert.Equal(t, 0.0, ApproachZero(0.1, 0.2))
	assert.InDelta(t, 0.3, ApproachZero(0.5, 0.2), 1e-12)
	assert.Equal(t, 0.0, ApproachZero(0, 0.016))
}

func TestChargeCurve(t *testing.T) {
	assert.Equal(t, 0.5, ChargeCurve(nil, 0.5))
	assert.Equal(t, 1.0, ChargeCurve(ease.OutQuad, 1))
	assert.Equal(t, 0.0, ChargeCurve(ease.OutQuad, -3))
	assert.Greater(t, ChargeCurve(ease.OutQuad, 0.5), 0.5)
	assert.InDelta(t, 0.25, ChargeCurve(ease.Linear, 0.25), 1e-6)
}

func TestChargeRatio(t *testing.T) {
	assert.Equal(t, 0.5, ChargeRatio(0.5, 1))
	assert.Equal(t, 1.0, ChargeRatio(3, 1))
	assert.Equal(t, 1.0, ChargeRatio(0.1, 0))
}
