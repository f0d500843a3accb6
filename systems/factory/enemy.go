package factory

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// NewEnemy builds an enemy of type t scaled for wave.
func NewEnemy(t config.EnemyTypeConfig, id components.ID, pos gamemath.Vec2, wave int) components.Enemy {
	if wave < 1 {
		wave = 1
	}
	health := t.Health * (1 + config.Wave.HealthPerWave*float64(wave-1))
	speedBonus := math.Min(config.Wave.SpeedPerWave*float64(wave-1), config.Wave.MaxSpeedBonus)

	e := components.Enemy{
		ID:              id,
		Type:            t.Name,
		Pos:             pos,
		Radius:          t.Radius,
		Health:          health,
		MaxHealth:       health,
		Speed:           t.Speed * (1 + speedBonus),
		Damage:          t.Damage,
		ContactCooldown: t.ContactCooldown,
		Value:           t.Value,
		XPValue:         t.XPValue,
	}
	if t.StompRadius > 0 {
		e.StompCooldown = t.StompCooldown
	}
	return e
}

// EnemyTable returns the wave-gated spawn table for wave, in EnemyOrder.
func EnemyTable(wave int) gamemath.WeightedTable[string] {
	entries := make([]gamemath.WeightedEntry[string], 0, len(config.EnemyOrder))
	for _, name := range config.EnemyOrder {
		t, ok := config.Enemies[name]
		if !ok || wave < t.MinWave {
			continue
		}
		w := t.BaseWeight + t.WeightPerWave*float64(wave-t.MinWave)
		if t.MaxWeight > 0 {
			w = math.Min(w, t.MaxWeight)
		}
		entries = append(entries, gamemath.WeightedEntry[string]{Value: name, Weight: w})
	}
	return gamemath.NewWeightedTable(entries...)
}
