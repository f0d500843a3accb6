package factory

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
)

// NewWave generates wave number n starting at now.
func NewWave(n int, now float64) *components.Wave {
	total := config.Wave.BaseEnemies + config.Wave.EnemiesPerWave*n
	return &components.Wave{
		Number:           n,
		TotalEnemies:     total,
		RemainingEnemies: total,
		SpawnDelay:       SpawnDelay(n),
		LastSpawnTime:    now,
		StartTime:        now,
	}
}

// SpawnDelay returns the seconds between spawns in wave n.
func SpawnDelay(n int) float64 {
	return math.Max(config.Wave.MinSpawnDelay, config.Wave.BaseSpawnDelay-config.Wave.SpawnDelayStep*float64(n))
}
