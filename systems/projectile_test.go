package systems

import (
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testArrow(s *components.State, pos, vel gamemath.Vec2) *components.Projectile {
	s.Projectiles = append(s.Projectiles, components.Projectile{
		ID:      s.AllocID(),
		OwnerID: s.Actors[0].ID,
		Pos:     pos,
		Vel:     vel,
		Radius:  s.Rules.Projectile.Radius,
		Damage:  5,
	})
	return &s.Projectiles[len(s.Projectiles)-1]
}

func TestPiercingArrowHitsEachTargetOnce(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	testArrow(s, gamemath.V(100, 100), gamemath.V(400, 0)).PiercingLeft = 1
	e1 := testEnemy(s, config.EnemyGrunt, gamemath.V(120, 100)).ID
	e2 := testEnemy(s, config.EnemyGrunt, gamemath.V(160, 100)).ID
	e3 := testEnemy(s, config.EnemyGrunt, gamemath.V(200, 100)).ID
	full := s.Enemy(e1).MaxHealth

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, []components.ID{e1}, s.Projectiles[0].HitIDs)
	assert.Equal(t, 0, s.Projectiles[0].PiercingLeft)

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1, "already-hit enemy is not struck again")
	assert.InDelta(t, full-5, s.Enemy(e1).Health, 1e-9)

	UpdateProjectiles(s, 0.05)
	assert.Empty(t, s.Projectiles, "pierce exhausted")
	assert.InDelta(t, full-5, s.Enemy(e2).Health, 1e-9)
	assert.InDelta(t, full, s.Enemy(e3).Health, 1e-9)
}

func TestRicochetReflectsOffWall(t *testing.T) {
	arena := emptyArena(config.ModePvE, factory.RectWall(200, 0, 50, 700))
	s := newMatchAt(config.ModePvE, arena, gamemath.V(500, 600))
	testArrow(s, gamemath.V(178, 100), gamemath.V(400, 0)).BouncesLeft = 1

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1)
	p := s.Projectiles[0]
	assert.Equal(t, 0, p.BouncesLeft)
	assert.InDelta(t, -400, p.Vel.X, 1e-9)
	assert.InDelta(t, 196, p.Pos.X, 1e-9)

	// Turn it back into the wall with no bounces left.
	s.Projectiles[0].Vel = gamemath.V(400, 0)
	UpdateProjectiles(s, 0.05)
	assert.Empty(t, s.Projectiles)
}

func TestArrowLeavingArenaIsRemoved(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	testArrow(s, gamemath.V(995, 100), gamemath.V(400, 0))

	UpdateProjectiles(s, 0.05)
	assert.Empty(t, s.Projectiles)
}

func TestExplosiveArrowLeavesExplosion(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	p := testArrow(s, gamemath.V(100, 100), gamemath.V(400, 0))
	p.IsExplosive = true
	p.ExplosionRadius = 60
	target := testEnemy(s, config.EnemyBrute, gamemath.V(120, 100)).ID
	bystander := testEnemy(s, config.EnemyBrute, gamemath.V(120, 150)).ID
	full := s.Enemy(bystander).Health

	UpdateProjectiles(s, 0.05)
	assert.Empty(t, s.Projectiles)
	require.Len(t, s.Effects, 1)
	assert.Equal(t, components.EffectExplosion, s.Effects[0].Type)
	assert.True(t, hasEvent(s, components.EventExplosion, s.Actors[0].ID))

	UpdateEffects(s, 0.05)
	want := s.Rules.Projectile.ExplosionDamage * 0.05
	assert.InDelta(t, full-want, s.Enemy(bystander).Health, 1e-9)
	assert.Less(t, s.Enemy(target).Health, full-5)
}

func TestExplosionExpires(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	s.Effects = append(s.Effects, factory.NewExplosion(s.Rules, s.AllocID(), s.Actors[0].ID, gamemath.V(100, 100), 50))

	for i := 0; i < 4; i++ {
		UpdateEffects(s, 0.1)
	}
	assert.Empty(t, s.Effects)
}

func TestFrostArrowSlowsEnemy(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	testArrow(s, gamemath.V(100, 100), gamemath.V(400, 0)).IsFrost = true
	id := testEnemy(s, config.EnemyBrute, gamemath.V(120, 100)).ID

	UpdateProjectiles(s, 0.05)
	e := s.Enemy(id)
	assert.True(t, e.IsSlowed)
	assert.InDelta(t, s.Rules.Projectile.FrostDuration, e.SlowTimer, 1e-9)
}

func TestHomingArrowTurnsTowardEnemy(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	p := testArrow(s, gamemath.V(100, 100), gamemath.V(400, 0))
	p.IsHoming = true
	p.Lifespan = s.Rules.Projectile.HomingLifespan
	id := testEnemy(s, config.EnemyGrunt, gamemath.V(100, 300)).ID

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1)
	got := s.Projectiles[0]
	assert.Equal(t, id, got.TargetID)
	assert.Greater(t, got.Vel.Y, 0.0)
	assert.InDelta(t, 400, got.Vel.Len(), 1e-9)
	assert.InDelta(t, s.Rules.Projectile.HomingLifespan-0.05, got.Lifespan, 1e-9)
}

func TestHomingArrowExpires(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 600))
	p := testArrow(s, gamemath.V(100, 100), gamemath.V(400, 0))
	p.IsHoming = true
	p.Lifespan = 0.01

	UpdateProjectiles(s, 0.05)
	assert.Empty(t, s.Projectiles)
}

func TestArrowPassesThroughInvulnerableActor(t *testing.T) {
	s := newMatchAt(config.ModePvP, emptyArena(config.ModePvP), gamemath.V(100, 400), gamemath.V(320, 400))
	s.Actors[1].InvulnerabilityTimer = 1
	s.Actors[1].IsInvulnerable = true
	testArrow(s, gamemath.V(280, 400), gamemath.V(400, 0))

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1)
	assert.Empty(t, s.Projectiles[0].HitIDs)
	assert.Equal(t, s.Actors[1].MaxHealth, s.Actors[1].Health)
}

func TestArrowNeverHitsOwner(t *testing.T) {
	s := newMatchAt(config.ModePvP, emptyArena(config.ModePvP), gamemath.V(300, 400), gamemath.V(900, 400))
	testArrow(s, gamemath.V(290, 400), gamemath.V(400, 0))

	UpdateProjectiles(s, 0.05)
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, s.Actors[0].MaxHealth, s.Actors[0].Health)
}

func TestPierceNeverGoesNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 650))
		n := rapid.IntRange(1, 6).Draw(t, "enemies")
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(100, 900).Draw(t, "x")
			testEnemy(s, config.EnemyGrunt, gamemath.V(x, 100))
		}
		pierce := rapid.IntRange(0, 3).Draw(t, "pierce")
		testArrow(s, gamemath.V(60, 100), gamemath.V(800, 0)).PiercingLeft = pierce

		prev := pierce
		for i := 0; i < 30 && len(s.Projectiles) > 0; i++ {
			hits := len(s.Projectiles[0].HitIDs)
			UpdateProjectiles(s, 0.02)
			if len(s.Projectiles) == 0 {
				break
			}
			p := s.Projectiles[0]
			if p.PiercingLeft < 0 {
				t.Fatalf("arrow survived with PiercingLeft %d", p.PiercingLeft)
			}
			if got := prev - p.PiercingLeft; got != len(p.HitIDs)-hits {
				t.Fatalf("pierce dropped by %d for %d new hits", got, len(p.HitIDs)-hits)
			}
			prev = p.PiercingLeft
		}
	})
}
