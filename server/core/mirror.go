package core

import (
	"github.com/automoto/archer-arena/archetypes"
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/automoto/archer-arena/systems"
	"github.com/yohamta/donburi"
)

// EntityKind says which simulation collection a mirrored entity came from.
type EntityKind int

const (
	KindActor EntityKind = iota
	KindProjectile
	KindEnemy
	KindEffect
	KindMatch
)

type simKey struct {
	kind EntityKind
	id   components.ID
}

// Mirror copies simulation snapshots into a donburi world so necs can sync
// them. Entities are created the first time a simulation ID shows up and
// removed when it disappears.
type Mirror struct {
	world    donburi.World
	entities map[simKey]donburi.Entity
	seen     map[simKey]bool

	// OnSpawn is called once for every new entity, before its data is set.
	OnSpawn func(kind EntityKind, entity donburi.Entity) error
}

func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:    world,
		entities: make(map[simKey]donburi.Entity),
		seen:     make(map[simKey]bool),
	}
}

// Apply brings the world in line with f.
func (m *Mirror) Apply(f Frame) error {
	s := f.State
	clear(m.seen)

	for i := range s.Actors {
		a := &s.Actors[i]
		entry, err := m.entry(KindActor, a.ID)
		if err != nil {
			return err
		}
		netcomponents.NetTransform.SetValue(entry, transform(a.Pos, a.Aim, a.Radius))
		netcomponents.NetVelocity.SetValue(entry, velocity(a.Vel))
		netcomponents.NetActor.SetValue(entry, actorData(s, a, f.LastSeq[a.ID]))
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		entry, err := m.entry(KindProjectile, p.ID)
		if err != nil {
			return err
		}
		netcomponents.NetTransform.SetValue(entry, transform(p.Pos, p.Rotation, p.Radius))
		netcomponents.NetVelocity.SetValue(entry, velocity(p.Vel))
		netcomponents.NetProjectile.SetValue(entry, netcomponents.NetProjectileData{
			ProjectileID: uint32(p.ID),
			OwnerID:      uint32(p.OwnerID),
			IsSpecial:    p.IsSpecial,
			IsWeakShot:   p.IsWeakShot,
			IsExplosive:  p.IsExplosive,
			IsFrost:      p.IsFrost,
			IsHoming:     p.IsHoming,
		})
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		entry, err := m.entry(KindEnemy, e.ID)
		if err != nil {
			return err
		}
		netcomponents.NetTransform.SetValue(entry, transform(e.Pos, e.Rotation, e.Radius))
		netcomponents.NetVelocity.SetValue(entry, velocity(e.Vel))
		netcomponents.NetEnemy.SetValue(entry, netcomponents.NetEnemyData{
			EnemyID:   uint32(e.ID),
			TypeName:  e.Type,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			IsSlowed:  e.IsSlowed,
		})
	}

	for i := range s.Effects {
		e := &s.Effects[i]
		entry, err := m.entry(KindEffect, e.ID)
		if err != nil {
			return err
		}
		life := 0.0
		if e.MaxLife > 0 {
			life = e.Life / e.MaxLife
		}
		netcomponents.NetTransform.SetValue(entry, transform(e.Pos, 0, systems.EffectDisplayRadius(e)))
		netcomponents.NetEffect.SetValue(entry, netcomponents.NetEffectData{
			EffectID: uint32(e.ID),
			Type:     string(e.Type),
			Life:     life,
		})
	}

	entry, err := m.entry(KindMatch, 0)
	if err != nil {
		return err
	}
	netcomponents.NetMatch.SetValue(entry, matchData(f))

	for key, entity := range m.entities {
		if m.seen[key] {
			continue
		}
		if m.world.Valid(entity) {
			m.world.Remove(entity)
		}
		delete(m.entities, key)
	}
	return nil
}

// Entity returns the world entity mirroring a simulation object.
func (m *Mirror) Entity(kind EntityKind, id components.ID) (donburi.Entity, bool) {
	e, ok := m.entities[simKey{kind, id}]
	return e, ok && m.world.Valid(e)
}

// Len returns the number of mirrored entities, including the match entity.
func (m *Mirror) Len() int {
	return len(m.entities)
}

func (m *Mirror) entry(kind EntityKind, id components.ID) (*donburi.Entry, error) {
	key := simKey{kind, id}
	m.seen[key] = true

	if e, ok := m.entities[key]; ok && m.world.Valid(e) {
		return m.world.Entry(e), nil
	}

	var entry *donburi.Entry
	switch kind {
	case KindActor:
		entry = archetypes.Actor.Spawn(m.world)
	case KindProjectile:
		entry = archetypes.Projectile.Spawn(m.world)
	case KindEnemy:
		entry = archetypes.Enemy.Spawn(m.world)
	case KindEffect:
		entry = archetypes.Effect.Spawn(m.world)
	default:
		entry = archetypes.Match.Spawn(m.world)
	}
	entity := entry.Entity()
	m.entities[key] = entity

	if m.OnSpawn != nil {
		if err := m.OnSpawn(kind, entity); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

func transform(pos gamemath.Vec2, rotation, radius float64) netcomponents.NetTransformData {
	return netcomponents.NetTransformData{X: pos.X, Y: pos.Y, Rotation: rotation, Radius: radius}
}

func velocity(v gamemath.Vec2) netcomponents.NetVelocityData {
	return netcomponents.NetVelocityData{VX: v.X, VY: v.Y}
}

func actorData(s *components.State, a *components.Actor, seq uint32) netcomponents.NetActorData {
	draw := 0.0
	if a.IsDrawingBow {
		draw = gamemath.ChargeRatio(s.Time-a.DrawStartTime, a.MaxDrawTime)
	}
	return netcomponents.NetActorData{
		ActorID:         uint32(a.ID),
		Name:            a.Name,
		Health:          a.Health,
		MaxHealth:       a.MaxHealth,
		Anim:            a.AnimationState,
		DrawRatio:       draw,
		IsDashing:       a.IsDashing,
		IsStunned:       a.IsStunned(),
		IsSlowed:        a.IsSlowed(),
		IsInvuln:        a.IsInvulnerable,
		IsDead:          a.IsDead,
		IsBot:           a.IsBot(),
		DashCooldown:    a.DashCooldown,
		SpecialCooldown: a.SpecialCooldown,
		Level:           a.Level,
		XP:              a.XP,
		XPToNextLevel:   a.XPToNextLevel,
		Score:           a.Score,
		Kills:           a.Kills,
		LastSequence:    seq,
	}
}

func matchData(f Frame) netcomponents.NetMatchData {
	s := f.State
	d := netcomponents.NetMatchData{
		MatchID:         f.MatchID,
		Mode:            int(s.Mode),
		Tick:            s.Tick,
		Time:            s.Time,
		WavesCleared:    s.WavesCleared,
		Score:           s.Score,
		IsLevelingUp:    s.IsLevelingUp,
		LevelingActorID: uint32(s.LevelingActorID),
		IsGameOver:      s.IsGameOver,
		Winner:          uint32(s.Winner),
	}
	if s.Arena != nil {
		d.Arena = s.Arena.Name
	}
	if s.Wave != nil {
		d.Wave = s.Wave.Number
		d.WaveRemaining = s.Wave.RemainingEnemies + len(s.Enemies)
	}
	for _, id := range s.AvailableUpgrades {
		d.Offers = append(d.Offers, string(id))
	}
	return d
}
