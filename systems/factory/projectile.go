package factory

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// ArrowKind selects which rules an arrow is built under.
type ArrowKind int

const (
	ArrowNormal    ArrowKind = iota // Inherits the owner's upgrades
	ArrowWeak                       // Under-drawn: no upgrades
	ArrowSpecial                    // Heavy piercing shot
	ArrowExplosive                  // Explosive-arrow ability
)

// ArrowSpec describes one arrow leaving the bow.
type ArrowSpec struct {
	Kind   ArrowKind
	Angle  float64
	Speed  float64
	Damage float64
}

// NewArrow builds an arrow fired by owner. It starts at the edge of the
// owner's collision circle.
func NewArrow(rules *config.ModeConfig, id components.ID, owner *components.Actor, spec ArrowSpec) components.Projectile {
	dir := gamemath.FromAngle(spec.Angle)
	p := components.Projectile{
		ID:       id,
		OwnerID:  owner.ID,
		Pos:      owner.Pos.Add(dir.Scale(owner.Radius)),
		Vel:      dir.Scale(spec.Speed),
		Rotation: spec.Angle,
		Radius:   rules.Projectile.Radius,
		Damage:   spec.Damage,
	}

	switch spec.Kind {
	case ArrowWeak:
		p.IsWeakShot = true
	case ArrowSpecial:
		p.IsSpecial = true
		p.PiercingLeft = rules.Special.Piercing + owner.Piercing
	case ArrowExplosive:
		p.IsExplosive = true
		p.ExplosionRadius = rules.Special.ExplosiveRadius
	default:
		p.PiercingLeft = owner.Piercing
		p.BouncesLeft = owner.Bounces
		if owner.ExplosiveRadius > 0 {
			p.IsExplosive = true
			p.ExplosionRadius = owner.ExplosiveRadius
		}
		p.IsFrost = owner.Frost
		if owner.Homing {
			p.IsHoming = true
			p.Lifespan = rules.Projectile.HomingLifespan
		}
	}
	return p
}

// SpreadAngles returns count angles centered on aim, step radians apart.
func SpreadAngles(aim, step float64, count int) []float64 {
	if count < 1 {
		count = 1
	}
	angles := make([]float64, count)
	half := float64(count-1) / 2
	for i := range angles {
		angles[i] = aim + (float64(i)-half)*step
	}
	return angles
}
