package components

import (
	"slices"

	"github.com/automoto/archer-arena/shared/gamemath"
)

// Projectile is an arrow in flight.
type Projectile struct {
	ID       ID
	OwnerID  ID
	Pos      gamemath.Vec2
	Vel      gamemath.Vec2
	Rotation float64
	Radius   float64
	Damage   float64

	PiercingLeft int // Destroyed once negative
	BouncesLeft  int

	IsExplosive     bool
	ExplosionRadius float64
	IsFrost         bool

	IsHoming bool
	TargetID ID
	Lifespan float64 // Seconds left, homing arrows only

	IsWeakShot bool
	IsSpecial  bool

	// HitIDs lists every target this arrow has already damaged.
	HitIDs []ID
}

// HasHit reports whether the arrow already damaged target.
func (p *Projectile) HasHit(target ID) bool {
	return slices.Contains(p.HitIDs, target)
}

func (p Projectile) clone() Projectile {
	p.HitIDs = slices.Clone(p.HitIDs)
	return p
}
