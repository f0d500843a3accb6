package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
)

// UpdateWaves spawns at most one enemy per tick and rolls over to the next
// wave once every enemy of the current one has been spawned and killed.
func UpdateWaves(s *components.State) {
	if s.Mode != config.ModePvE || s.Wave == nil || s.IsGameOver {
		return
	}
	w := s.Wave

	if w.RemainingEnemies > 0 && s.Time-w.LastSpawnTime >= w.SpawnDelay {
		spawnEnemy(s, w.Number)
		w.RemainingEnemies--
		w.Spawned++
		w.LastSpawnTime = s.Time
	}

	if w.RemainingEnemies > 0 || len(s.Enemies) > 0 {
		return
	}

	w.IsComplete = true
	s.PreviousWave = w
	s.WavesCleared++
	s.Emit(components.Event{Kind: components.EventWaveComplete, Amount: float64(w.Number)})

	s.Wave = factory.NewWave(w.Number+1, s.Time)
	s.Emit(components.Event{Kind: components.EventWaveStart, Amount: float64(s.Wave.Number)})
}

func spawnEnemy(s *components.State, wave int) {
	r := s.Rand()
	name, ok := factory.EnemyTable(wave).Pick(r.Float64())
	if !ok {
		name = config.EnemyGrunt
	}
	t := config.Enemies[name]
	pos := edgeSpawnPoint(s.Arena, r.IntN(4), r.Float64(), config.Wave.SpawnOffset+t.Radius)
	s.Enemies = append(s.Enemies, factory.NewEnemy(t, s.AllocID(), pos, wave))
}

// edgeSpawnPoint returns a point offset outside one arena edge (0 top,
// 1 right, 2 bottom, 3 left) at fraction along of its length.
func edgeSpawnPoint(arena *components.Arena, edge int, along, offset float64) gamemath.Vec2 {
	w, h := arena.Width, arena.Height
	switch edge {
	case 0:
		return gamemath.V(along*w, -offset)
	case 1:
		return gamemath.V(w+offset, along*h)
	case 2:
		return gamemath.V(along*w, h+offset)
	default:
		return gamemath.V(-offset, along*h)
	}
}
