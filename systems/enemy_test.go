package systems

import (
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyChasesNearestActor(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	id := testEnemy(s, config.EnemyGrunt, gamemath.V(100, 350)).ID

	UpdateEnemies(s, 0.1)
	e := s.Enemy(id)
	assert.InDelta(t, 108, e.Pos.X, 1e-9)
	assert.InDelta(t, 350, e.Pos.Y, 1e-9)
	assert.InDelta(t, 0, e.Rotation, 1e-9)
}

func TestEnemyStopsAtContactOverlap(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	id := testEnemy(s, config.EnemyGrunt, gamemath.V(467, 350)).ID

	UpdateEnemies(s, 0.1)
	assert.InDelta(t, 469, s.Enemy(id).Pos.X, 1e-9)

	UpdateEnemies(s, 0.1)
	assert.InDelta(t, 469, s.Enemy(id).Pos.X, 1e-9)
}

func TestEnemiesSeparate(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 650))
	a := testEnemy(s, config.EnemyGrunt, gamemath.V(100, 100)).ID
	b := testEnemy(s, config.EnemyGrunt, gamemath.V(110, 100)).ID

	UpdateEnemies(s, 0.01)
	ea, eb := s.Enemy(a), s.Enemy(b)
	assert.GreaterOrEqual(t, ea.Pos.Dist(eb.Pos), ea.Radius+eb.Radius-1e-9)
}

func TestGuardianStompStunsOnce(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	g := testEnemy(s, config.EnemyGuardian, gamemath.V(560, 350))
	g.StompCooldown = 0
	gid := g.ID

	UpdateEnemies(s, 0.05)
	require.Len(t, s.Effects, 1)
	assert.Equal(t, components.EffectStomp, s.Effects[0].Type)
	assert.InDelta(t, config.Enemies[config.EnemyGuardian].StompCooldown, s.Enemy(gid).StompCooldown, 1e-9)
	assert.True(t, hasEvent(s, components.EventStomp, gid))

	UpdateEffects(s, 0.05)
	a := s.Actors[0]
	assert.InDelta(t, config.Enemies[config.EnemyGuardian].StompStun, a.StunTimer, 1e-9)
	assert.Less(t, a.Health, a.MaxHealth)
	assert.Equal(t, []components.ID{a.ID}, s.Effects[0].StunnedIDs)

	// A second pass must not re-apply the stun.
	s.Actors[0].StunTimer = 0.1
	s.Actors[0].InvulnerabilityTimer = 0
	s.Actors[0].IsInvulnerable = false
	UpdateEffects(s, 0.05)
	assert.InDelta(t, 0.1, s.Actors[0].StunTimer, 1e-9)
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	id := testEnemy(s, config.EnemyGrunt, gamemath.V(480, 350)).ID
	grunt := config.Enemies[config.EnemyGrunt]

	UpdateContacts(s)
	assert.InDelta(t, s.Actors[0].MaxHealth-grunt.Damage, s.Actors[0].Health, 1e-9)
	assert.InDelta(t, grunt.ContactCooldown, s.Enemy(id).AttackCooldown, 1e-9)

	s.Actors[0].InvulnerabilityTimer = 0
	s.Actors[0].IsInvulnerable = false
	UpdateContacts(s)
	assert.InDelta(t, s.Actors[0].MaxHealth-grunt.Damage, s.Actors[0].Health, 1e-9)
}

func TestContactOnInvulnerableActorKeepsCooldownReady(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	id := testEnemy(s, config.EnemyGrunt, gamemath.V(480, 350)).ID
	s.Actors[0].IsInvulnerable = true
	s.Actors[0].InvulnerabilityTimer = 1

	UpdateContacts(s)
	assert.Equal(t, s.Actors[0].MaxHealth, s.Actors[0].Health)
	assert.Zero(t, s.Enemy(id).AttackCooldown)
}
