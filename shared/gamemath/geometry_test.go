package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleRectOutside(t *testing.T) {
	_, hit := CircleRect(V(0, 0), 5, Rect{X: 10, Y: -5, W: 10, H: 10})
	assert.False(t, hit)
}

func TestCircleRectEdge(t *testing.T) {
	c, hit := CircleRect(V(8, 0), 5, Rect{X: 10, Y: -5, W: 10, H: 10})
	require.True(t, hit)
	assert.Equal(t, V(-1, 0), c.Normal)
	assert.InDelta(t, 3, c.Depth, 1e-12)
}

func TestCircleRectCenterInside(t *testing.T) {
	c, hit := CircleRect(V(11, 0), 2, Rect{X: 10, Y: -5, W: 10, H: 10})
	require.True(t, hit)
	assert.Equal(t, V(-1, 0), c.Normal)
	assert.InDelta(t, 3, c.Depth, 1e-12)
}

func TestCircleCircle(t *testing.T) {
	c, hit := CircleCircle(V(0, 0), 5, V(8, 0), 5)
	require.True(t, hit)
	assert.Equal(t, V(-1, 0), c.Normal)
	assert.InDelta(t, 2, c.Depth, 1e-12)

	_, hit = CircleCircle(V(0, 0), 5, V(10, 0), 5)
	assert.False(t, hit)
	assert.False(t, CirclesOverlap(V(0, 0), 5, V(10, 0), 5))
	assert.True(t, CirclesOverlap(V(0, 0), 5, V(9.9, 0), 5))
}

func TestSegmentIntersectsRect(t *testing.T) {
	wall := Rect{X: 45, Y: -50, W: 10, H: 100}

	tests := []struct {
		name string
		a, b Vec2
		pad  float64
		want bool
	}{
		{"crosses", V(0, 0), V(100, 0), 0, true},
		{"stops short", V(0, 0), V(40, 0), 0, false},
		{"passes above", V(0, -60), V(100, -60), 0, false},
		{"passes above with padding", V(0, -55), V(100, -55), 6, true},
		{"vertical inside slab", V(50, -100), V(50, 100), 0, true},
		{"vertical outside slab", V(60, -100), V(60, 100), 0, false},
		{"degenerate point inside", V(50, 0), V(50, 0), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentIntersectsRect(tt.a, tt.b, wall, tt.pad))
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	assert.InDelta(t, 5, PointSegmentDistance(V(5, 5), V(0, 0), V(10, 0)), 1e-12)
	assert.InDelta(t, 5, PointSegmentDistance(V(-3, 4), V(0, 0), V(10, 0)), 1e-12)
	assert.InDelta(t, 5, PointSegmentDistance(V(3, 4), V(0, 0), V(0, 0)), 1e-12)
}
