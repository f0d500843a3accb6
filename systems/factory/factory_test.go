package factory

import (
	"math"
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewActorStartsAtFullHealth(t *testing.T) {
	rules := config.ForMode(config.ModePvE)
	a := NewActor(rules, 3, "p1", gamemath.V(10, 20))

	assert.Equal(t, components.ID(3), a.ID)
	assert.Equal(t, rules.Actor.MaxHealth, a.Health)
	assert.Equal(t, rules.Actor.Radius, a.Radius)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, 100.0, a.XPToNextLevel)
	assert.NotNil(t, a.Upgrades)
	assert.Equal(t, components.Never, a.LastShotTime)
	assert.False(t, a.IsBot())

	pvp := NewActor(config.ForMode(config.ModePvP), 1, "p1", gamemath.Vec2{})
	assert.Nil(t, pvp.Upgrades)
	assert.Zero(t, pvp.XPToNextLevel)
}

func TestXPToNextLevel(t *testing.T) {
	p := config.ForMode(config.ModePvE).Progression
	assert.Equal(t, 100.0, XPToNextLevel(p, 1))
	assert.Equal(t, 120.0, XPToNextLevel(p, 2))
	assert.Equal(t, 144.0, XPToNextLevel(p, 3))
	assert.Equal(t, 172.0, XPToNextLevel(p, 4))
	assert.Equal(t, 100.0, XPToNextLevel(p, 0))
}

func TestNewWave(t *testing.T) {
	w := NewWave(1, 5)
	assert.Equal(t, 7, w.TotalEnemies)
	assert.Equal(t, w.TotalEnemies, w.RemainingEnemies)
	assert.Zero(t, w.Spawned)
	assert.Equal(t, 5.0, w.LastSpawnTime)
	assert.InDelta(t, 1.9, w.SpawnDelay, 1e-9)

	assert.Equal(t, 25, NewWave(10, 0).TotalEnemies)
	assert.Equal(t, config.Wave.MinSpawnDelay, SpawnDelay(100))
}

func TestEnemyTableIsWaveGated(t *testing.T) {
	first := EnemyTable(1)
	require.Equal(t, 1, first.Len())
	name, ok := first.Pick(0.99)
	require.True(t, ok)
	assert.Equal(t, config.EnemyGrunt, name)

	assert.Equal(t, len(config.EnemyOrder), EnemyTable(20).Len())
}

func TestEnemyTableWeightsAreCapped(t *testing.T) {
	late := EnemyTable(200)
	// Grunts have faded out; everything else sits at its cap.
	require.Equal(t, len(config.EnemyOrder)-1, late.Len())
	assert.InDelta(t, 4+3+3+1.5, late.Total(), 1e-9)
	assert.InDelta(t, 1.5/11.5, late.Probability(late.Len()-1), 1e-9)
}

func TestNewEnemyScalesWithWave(t *testing.T) {
	grunt := config.Enemies[config.EnemyGrunt]
	e1 := NewEnemy(grunt, 1, gamemath.Vec2{}, 1)
	e11 := NewEnemy(grunt, 2, gamemath.Vec2{}, 11)

	assert.Equal(t, grunt.Health, e1.Health)
	assert.InDelta(t, grunt.Health*2, e11.Health, 1e-9)
	assert.InDelta(t, grunt.Speed*1.2, e11.Speed, 1e-9)

	capped := NewEnemy(grunt, 3, gamemath.Vec2{}, 500)
	assert.InDelta(t, grunt.Speed*(1+config.Wave.MaxSpeedBonus), capped.Speed, 1e-9)
}

func TestNewArrowInheritsUpgrades(t *testing.T) {
	rules := config.ForMode(config.ModePvE)
	owner := NewActor(rules, 1, "p1", gamemath.V(100, 100))
	owner.Piercing = 2
	owner.Bounces = 1
	owner.Frost = true
	owner.Homing = true
	owner.ExplosiveRadius = 70

	p := NewArrow(rules, 2, &owner, ArrowSpec{Kind: ArrowNormal, Angle: math.Pi / 2, Speed: 500, Damage: 12})
	assert.InDelta(t, 100, p.Pos.X, 1e-9)
	assert.InDelta(t, 100+owner.Radius, p.Pos.Y, 1e-9)
	assert.InDelta(t, 500, p.Vel.Y, 1e-9)
	assert.Equal(t, 2, p.PiercingLeft)
	assert.Equal(t, 1, p.BouncesLeft)
	assert.True(t, p.IsFrost)
	assert.True(t, p.IsHoming)
	assert.Equal(t, rules.Projectile.HomingLifespan, p.Lifespan)
	assert.True(t, p.IsExplosive)
	assert.Equal(t, 70.0, p.ExplosionRadius)

	weak := NewArrow(rules, 3, &owner, ArrowSpec{Kind: ArrowWeak, Speed: 400, Damage: 1})
	assert.True(t, weak.IsWeakShot)
	assert.Zero(t, weak.PiercingLeft)
	assert.False(t, weak.IsFrost)
	assert.False(t, weak.IsHoming)
	assert.False(t, weak.IsExplosive)
}

func TestSpreadAnglesAreSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		aim := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "aim")
		step := rapid.Float64Range(0.01, 0.5).Draw(t, "step")
		count := rapid.IntRange(1, 9).Draw(t, "count")

		angles := SpreadAngles(aim, step, count)
		if len(angles) != count {
			t.Fatalf("got %d angles, want %d", len(angles), count)
		}
		for i := range angles {
			mirror := angles[len(angles)-1-i]
			if math.Abs((angles[i]-aim)+(mirror-aim)) > 1e-9 {
				t.Fatalf("spread not symmetric around aim: %v", angles)
			}
		}
	})
}

func TestDefaultArenaRegistersWalls(t *testing.T) {
	for _, mode := range []config.GameMode{config.ModePvP, config.ModePvE} {
		arena := DefaultArena(mode)
		objects := arena.Space.Objects()
		require.Len(t, objects, len(arena.Walls), mode.String())
		assert.NotEmpty(t, arena.SpawnPoints)
		for _, sp := range arena.SpawnPoints {
			assert.True(t, arena.Bounds().Contains(sp))
		}
		for _, obj := range objects {
			w, ok := obj.Data.(*components.Wall)
			require.True(t, ok)
			owned := false
			for i := range arena.Walls {
				owned = owned || w == &arena.Walls[i]
			}
			assert.True(t, owned, "object data points into arena.Walls")
		}
	}
}

func TestWallsNearUsesSpaceCells(t *testing.T) {
	walls := []components.Wall{
		RectWall(0, 0, 40, 40),
		RectWall(700, 500, 100, 100), // touches the far corner
		PillarWall(400, 300, 20),
	}
	arena := NewArena("t", 800, 600, walls, nil, 32)

	var found []*components.Wall
	arena.WallsNear(gamemath.Rect{X: 750, Y: 550, W: 10, H: 10}, func(w *components.Wall) bool {
		found = append(found, w)
		return true
	})
	require.Len(t, found, 1)
	assert.Same(t, &arena.Walls[1], found[0])

	found = found[:0]
	arena.WallsNear(gamemath.Rect{X: 100, Y: 100, W: 200, H: 100}, func(w *components.Wall) bool {
		found = append(found, w)
		return true
	})
	assert.Empty(t, found, "walls in other cells are never visited")

	// Queries leave the space as they found it.
	assert.Len(t, arena.Space.Objects(), len(walls))
}

func TestArenaBlockedBySolidWall(t *testing.T) {
	arena := NewArena("t", 800, 600, []components.Wall{RectWall(390, 0, 20, 600)}, nil, 32)
	assert.True(t, arena.Blocked(gamemath.V(100, 300), gamemath.V(700, 300), 4))
	assert.False(t, arena.Blocked(gamemath.V(100, 300), gamemath.V(300, 500), 4))

	pillar := NewArena("t", 800, 600, []components.Wall{PillarWall(400, 300, 30)}, nil, 32)
	assert.True(t, pillar.Blocked(gamemath.V(100, 300), gamemath.V(700, 300), 4))
	assert.False(t, pillar.Blocked(gamemath.V(100, 100), gamemath.V(700, 100), 4))
}

func TestNewMatchOrdersHumansBeforeBots(t *testing.T) {
	s := NewMatch(MatchOptions{
		Mode:    config.ModePvE,
		Seed:    1,
		Players: []string{"alice"},
		Bots:    []config.BotDifficulty{config.BotDifficultyHard},
	})
	require.Len(t, s.Actors, 2)
	assert.False(t, s.Actors[0].IsBot())
	assert.True(t, s.Actors[1].IsBot())
	assert.Equal(t, "bot-1 (hard)", s.Actors[1].Name)
	assert.Equal(t, 2, s.StartingActors)
	require.NotNil(t, s.Wave)
	assert.Equal(t, 1, s.Wave.Number)
	assert.Equal(t, components.ID(2), s.NextID)

	pvp := NewMatch(MatchOptions{Mode: config.ModePvP, Players: []string{"a", "b"}})
	assert.Nil(t, pvp.Wave)
	assert.NotEqual(t, pvp.Actors[0].Pos, pvp.Actors[1].Pos)
}
