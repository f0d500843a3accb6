package components

import (
	"slices"

	"github.com/automoto/archer-arena/shared/gamemath"
)

// EffectType distinguishes area effects.
type EffectType string

const (
	EffectExplosion EffectType = "explosion"
	EffectStomp     EffectType = "stomp"
)

// Effect is a short-lived damage area.
type Effect struct {
	ID      ID
	Type    EffectType
	OwnerID ID
	Pos     gamemath.Vec2
	Radius  float64
	Damage  float64 // Per second while a target overlaps
	Life    float64
	MaxLife float64

	StunDuration float64 // Stomp only, applied once per target
	StunnedIDs   []ID
}

func (e Effect) clone() Effect {
	e.StunnedIDs = slices.Clone(e.StunnedIDs)
	return e
}
