package archetypes

import (
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/automoto/archer-arena/tags"
	"github.com/yohamta/donburi"
)

var (
	Actor = newArchetype(
		tags.Actor,
		netcomponents.NetTransform,
		netcomponents.NetVelocity,
		netcomponents.NetActor,
	)
	Projectile = newArchetype(
		tags.Projectile,
		netcomponents.NetTransform,
		netcomponents.NetVelocity,
		netcomponents.NetProjectile,
	)
	Enemy = newArchetype(
		tags.Enemy,
		netcomponents.NetTransform,
		netcomponents.NetVelocity,
		netcomponents.NetEnemy,
	)
	Effect = newArchetype(
		tags.Effect,
		netcomponents.NetTransform,
		netcomponents.NetEffect,
	)
	Match = newArchetype(
		tags.Match,
		netcomponents.NetMatch,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}

