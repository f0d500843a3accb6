package factory

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// NewExplosion builds an explosion left behind by an explosive arrow.
func NewExplosion(rules *config.ModeConfig, id, owner components.ID, pos gamemath.Vec2, radius float64) components.Effect {
	life := rules.Effect.ExplosionLife
	return components.Effect{
		ID:      id,
		Type:    components.EffectExplosion,
		OwnerID: owner,
		Pos:     pos,
		Radius:  radius,
		Damage:  rules.Projectile.ExplosionDamage,
		Life:    life,
		MaxLife: life,
	}
}

// NewStomp builds a guardian's ground stomp.
func NewStomp(rules *config.ModeConfig, id, owner components.ID, pos gamemath.Vec2, t config.EnemyTypeConfig) components.Effect {
	life := rules.Effect.StompLife
	return components.Effect{
		ID:           id,
		Type:         components.EffectStomp,
		OwnerID:      owner,
		Pos:          pos,
		Radius:       t.StompRadius,
		Damage:       t.StompDamage,
		Life:         life,
		MaxLife:      life,
		StunDuration: t.StompStun,
	}
}
