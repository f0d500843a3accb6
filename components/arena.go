package components

import (
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags for arena geometry
const (
	ResolvSolid  = "solid"
	ResolvPillar = "pillar"
)

// WallShape selects the collision shape of a Wall.
type WallShape int

const (
	WallRect WallShape = iota
	WallPillar
)

// Wall is a static obstacle: a box or a round pillar.
type Wall struct {
	Shape  WallShape
	Rect   gamemath.Rect // WallRect
	Center gamemath.Vec2 // WallPillar
	Radius float64       // WallPillar
}

// Bounds returns the wall's bounding box.
func (w Wall) Bounds() gamemath.Rect {
	if w.Shape == WallPillar {
		return gamemath.Rect{X: w.Center.X - w.Radius, Y: w.Center.Y - w.Radius, W: 2 * w.Radius, H: 2 * w.Radius}
	}
	return w.Rect
}

// Collide tests a circle against the wall.
func (w Wall) Collide(c gamemath.Vec2, radius float64) (gamemath.Contact, bool) {
	if w.Shape == WallPillar {
		return gamemath.CircleCircle(c, radius, w.Center, w.Radius)
	}
	return gamemath.CircleRect(c, radius, w.Rect)
}

// BlocksSegment reports whether the wall interrupts the segment a-b once
// grown by pad.
func (w Wall) BlocksSegment(a, b gamemath.Vec2, pad float64) bool {
	if w.Shape == WallPillar {
		return gamemath.PointSegmentDistance(w.Center, a, b) < w.Radius+pad
	}
	return gamemath.SegmentIntersectsRect(a, b, w.Rect, pad)
}

// Arena is the static playfield. It is built once and shared by every
// snapshot of a match; wall queries only add and remove a temporary query
// object, so matches sharing an arena must run on one goroutine.
type Arena struct {
	Name          string
	Width, Height float64
	Walls         []Wall
	SpawnPoints   []gamemath.Vec2

	// Space holds one resolv object per wall, tagged ResolvSolid or
	// ResolvPillar, with Data pointing at the Wall.
	Space *resolv.Space
}

// Bounds returns the playable rectangle.
func (a *Arena) Bounds() gamemath.Rect {
	return gamemath.Rect{W: a.Width, H: a.Height}
}

// WallsNear calls fn for every wall whose bounding box overlaps area.
// The resolv space narrows the candidates to walls sharing a cell with
// area. Iteration stops when fn returns false.
func (a *Arena) WallsNear(area gamemath.Rect, fn func(w *Wall) bool) {
	if a.Space == nil {
		return
	}
	// resolv trims a pixel off the far edges when mapping to cells
	query := resolv.NewObject(area.X-1, area.Y-1, area.W+2, area.H+2)
	a.Space.Add(query)
	check := query.Check(0, 0, ResolvSolid, ResolvPillar)
	a.Space.Remove(query)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		if !area.Overlaps(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			continue
		}
		w, ok := obj.Data.(*Wall)
		if !ok {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

// Blocked reports whether any wall interrupts the segment a-b grown by pad.
func (a *Arena) Blocked(from, to gamemath.Vec2, pad float64) bool {
	area := gamemath.Rect{
		X: min(from.X, to.X) - pad,
		Y: min(from.Y, to.Y) - pad,
		W: abs(to.X-from.X) + 2*pad,
		H: abs(to.Y-from.Y) + 2*pad,
	}
	blocked := false
	a.WallsNear(area, func(w *Wall) bool {
		if w.BlocksSegment(from, to, pad) {
			blocked = true
			return false
		}
		return true
	})
	return blocked
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
