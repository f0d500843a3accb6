package gamemath

import "math"

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Overlaps reports whether two boxes intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X && r.Y < o.MaxY() && r.MaxY() > o.Y
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() < r*r
}

// Contact describes how far a circle penetrates a solid and which way to
// push it out. Normal points from the solid toward the circle.
type Contact struct {
	Normal Vec2
	Depth  float64
}

// CircleRect tests a circle against an axis-aligned box.
func CircleRect(c Vec2, radius float64, r Rect) (Contact, bool) {
	closest := Vec2{Clamp(c.X, r.X, r.MaxX()), Clamp(c.Y, r.Y, r.MaxY())}
	d := c.Sub(closest)
	distSq := d.LenSq()
	if distSq >= radius*radius {
		return Contact{}, false
	}

	if distSq > Epsilon*Epsilon {
		dist := math.Sqrt(distSq)
		return Contact{Normal: d.Scale(1 / dist), Depth: radius - dist}, true
	}

	// Center inside the box: leave through the nearest face.
	left := c.X - r.X
	right := r.MaxX() - c.X
	top := c.Y - r.Y
	bottom := r.MaxY() - c.Y
	best := Contact{Normal: Vec2{-1, 0}, Depth: left + radius}
	if right < left {
		best = Contact{Normal: Vec2{1, 0}, Depth: right + radius}
	}
	if top < math.Min(left, right) {
		best = Contact{Normal: Vec2{0, -1}, Depth: top + radius}
	}
	if bottom < math.Min(math.Min(left, right), top) {
		best = Contact{Normal: Vec2{0, 1}, Depth: bottom + radius}
	}
	return best, true
}

// CircleCircle tests circle a against a solid circle b.
func CircleCircle(a Vec2, ra float64, b Vec2, rb float64) (Contact, bool) {
	d := a.Sub(b)
	r := ra + rb
	distSq := d.LenSq()
	if distSq >= r*r {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	if dist < Epsilon {
		return Contact{Normal: Vec2{1, 0}, Depth: r}, true
	}
	return Contact{Normal: d.Scale(1 / dist), Depth: r - dist}, true
}

// PointSegmentDistance returns the distance from p to the segment a-b.
func PointSegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < Epsilon {
		return p.Dist(a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Dist(a.Add(ab.Scale(t)))
}

// SegmentIntersectsRect reports whether the segment a-b crosses the box
// grown by pad on every side (slab test).
func SegmentIntersectsRect(a, b Vec2, r Rect, pad float64) bool {
	minX, maxX := r.X-pad, r.MaxX()+pad
	minY, maxY := r.Y-pad, r.MaxY()+pad
	d := b.Sub(a)
	tMin, tMax := 0.0, 1.0

	slab := func(start, delta, lo, hi float64) bool {
		if math.Abs(delta) < Epsilon {
			return start >= lo && start <= hi
		}
		t1 := (lo - start) / delta
		t2 := (hi - start) / delta
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	return slab(a.X, d.X, minX, maxX) && slab(a.Y, d.Y, minY, maxY)
}
