package systems

import (
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveSpawnsOneEnemyPerTickOutsideArena(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	require.NotNil(t, s.Wave)
	require.Equal(t, 7, s.Wave.TotalEnemies)

	s.Time = s.Wave.SpawnDelay - 0.01
	UpdateWaves(s)
	assert.Empty(t, s.Enemies, "spawn delay has not elapsed")

	s.Time = 100
	UpdateWaves(s)
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 6, s.Wave.RemainingEnemies)
	assert.Equal(t, 1, s.Wave.Spawned)
	assert.Equal(t, 100.0, s.Wave.LastSpawnTime)

	e := s.Enemies[0]
	assert.Equal(t, config.EnemyGrunt, e.Type, "only grunts are eligible in wave 1")
	assert.False(t, s.Arena.Bounds().Contains(e.Pos), "enemy %v spawned inside the arena", e.Pos)
}

func TestWaveCompletesAndAdvances(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	s.Time = 42
	s.Wave.RemainingEnemies = 0
	s.Wave.Spawned = s.Wave.TotalEnemies

	UpdateWaves(s)
	require.NotNil(t, s.PreviousWave)
	assert.True(t, s.PreviousWave.IsComplete)
	assert.Equal(t, 1, s.PreviousWave.Number)
	assert.Equal(t, 1, s.WavesCleared)

	assert.Equal(t, 2, s.Wave.Number)
	assert.Equal(t, 9, s.Wave.TotalEnemies)
	assert.Equal(t, 9, s.Wave.RemainingEnemies)
	assert.Equal(t, 42.0, s.Wave.LastSpawnTime)
	assert.True(t, hasEvent(s, components.EventWaveComplete, 0))
	assert.True(t, hasEvent(s, components.EventWaveStart, 0))
}

func TestWaveWaitsForLivingEnemies(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	s.Wave.RemainingEnemies = 0
	s.Wave.Spawned = s.Wave.TotalEnemies
	testEnemy(s, config.EnemyGrunt, gamemath.V(100, 100))

	UpdateWaves(s)
	assert.Equal(t, 1, s.Wave.Number)
	assert.Zero(t, s.WavesCleared)
}

func TestNoWavesInArenaMode(t *testing.T) {
	s := newMatchAt(config.ModePvP, emptyArena(config.ModePvP), gamemath.V(300, 400), gamemath.V(900, 400))
	s.Time = 100

	UpdateWaves(s)
	assert.Nil(t, s.Wave)
	assert.Empty(t, s.Enemies)
}

func TestEdgeSpawnPoint(t *testing.T) {
	arena := emptyArena(config.ModePvE)
	assert.Equal(t, gamemath.V(500, -40), edgeSpawnPoint(arena, 0, 0.5, 40))
	assert.Equal(t, gamemath.V(1040, 350), edgeSpawnPoint(arena, 1, 0.5, 40))
	assert.Equal(t, gamemath.V(500, 740), edgeSpawnPoint(arena, 2, 0.5, 40))
	assert.Equal(t, gamemath.V(-40, 350), edgeSpawnPoint(arena, 3, 0.5, 40))
}

func TestClearingFirstWaveStartsSecond(t *testing.T) {
	s := newMatchAt(config.ModePvE, emptyArena(config.ModePvE), gamemath.V(500, 350))
	require.Equal(t, 7, s.Wave.TotalEnemies)

	for i := 0; i < 5000 && s.Wave.Spawned < 7; i++ {
		s.Actors[0].Health = s.Actors[0].MaxHealth
		s = Update(s, 1.0/60)
	}
	require.Equal(t, 7, s.Wave.Spawned)
	require.Zero(t, s.Wave.RemainingEnemies)
	require.Len(t, s.Enemies, 7)
	require.Equal(t, 1, s.Wave.Number)

	for i := range s.Enemies {
		s.Enemies[i].Health = 0
	}
	s = Update(s, 1.0/60)

	require.NotNil(t, s.PreviousWave)
	assert.True(t, s.PreviousWave.IsComplete)
	assert.Equal(t, 1, s.PreviousWave.Number)
	assert.Equal(t, 2, s.Wave.Number)
	assert.Equal(t, 1, s.WavesCleared)
	assert.Empty(t, s.Enemies)
	assert.True(t, hasEvent(s, components.EventWaveComplete, 0))
}
