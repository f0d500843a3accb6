package factory

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// NewActor builds a full-health actor at pos using the mode's actor and bow
// tables. The caller assigns the ID.
func NewActor(rules *config.ModeConfig, id components.ID, name string, pos gamemath.Vec2) components.Actor {
	a := components.Actor{
		ID:        id,
		Name:      name,
		Pos:       pos,
		Radius:    rules.Actor.Radius,
		Health:    rules.Actor.MaxHealth,
		MaxHealth: rules.Actor.MaxHealth,

		MinDrawTime:  rules.Bow.MinDrawTime,
		MaxDrawTime:  rules.Bow.MaxDrawTime,
		LastShotTime: components.Never,

		MoveSpeedMultiplier:    1,
		DamageMultiplier:       1,
		XPMultiplier:           1,
		DashCooldownMultiplier: 1,

		Level:          1,
		AnimationState: components.AnimIdle,
	}
	if rules.Progression.Enabled {
		a.XPToNextLevel = XPToNextLevel(rules.Progression, 1)
		a.Upgrades = make(map[config.UpgradeID]int)
	}
	return a
}

// NewBotActor builds an AI-controlled actor.
func NewBotActor(rules *config.ModeConfig, id components.ID, name string, pos gamemath.Vec2, difficulty config.BotDifficulty) components.Actor {
	a := NewActor(rules, id, name, pos)
	a.Bot = NewBotData(difficulty)
	return a
}

// NewBotData returns fresh AI memory. The server uses it to hand a
// disconnected player's archer back to the AI.
func NewBotData(difficulty config.BotDifficulty) *components.BotData {
	return &components.BotData{
		Difficulty: difficulty,
		State:      components.BotStatePatrolling,
		StrafeSign: 1,
	}
}

// XPToNextLevel returns floor(BaseXP * Growth^(level-1)).
func XPToNextLevel(p config.ProgressionConfig, level int) float64 {
	if level < 1 {
		level = 1
	}
	// The epsilon keeps 100*1.2^2 from flooring to 143.
	return math.Floor(p.BaseXP*math.Pow(p.Growth, float64(level-1)) + 1e-9)
}
