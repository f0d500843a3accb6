package config

import "github.com/tanema/gween/ease"

// GameMode selects the rule set a match runs under.
type GameMode int

const (
	ModePvP GameMode = iota // Archer Arena: last archer standing
	ModePvE                 // Last Stand: wave survival
)

func (m GameMode) String() string {
	switch m {
	case ModePvP:
		return "pvp"
	case ModePvE:
		return "pve"
	}
	return "unknown"
}

// ParseGameMode maps "pvp" / "pve" to a GameMode.
func ParseGameMode(s string) (GameMode, bool) {
	switch s {
	case "pvp", "arena":
		return ModePvP, true
	case "pve", "laststand":
		return ModePvE, true
	}
	return ModePvP, false
}

// SimConfig holds mode-independent simulation settings.
type SimConfig struct {
	MaxDelta float64 // Longest step a single tick may integrate (seconds)
	Seed     uint64  // Default RNG seed for new matches
}

// ArenaConfig describes the default arena when no level file is loaded.
type ArenaConfig struct {
	Width, Height float64
	SpawnInset    float64 // Distance of default spawn points from the edges
	CellSize      int     // resolv space cell size
}

// ActorConfig contains per-actor movement and health values.
type ActorConfig struct {
	Radius     float64
	MaxHealth  float64
	BaseSpeed  float64 // px/s
	SlowFactor float64 // Speed multiplier while slowed
	HitInvuln  float64 // Invulnerability granted after taking a hit (seconds)
}

// BowConfig is the draw/release curve for the primary weapon.
type BowConfig struct {
	MinDrawTime     float64 // Below this the release is a weak shot
	MaxDrawTime     float64 // Full power
	MinDamage       float64
	MaxDamage       float64
	MinSpeed        float64
	MaxSpeed        float64
	WeakShotDamage  float64
	ShotCooldown    float64 // Minimum time between releases
	DrawMovePenalty float64 // Speed multiplier while drawing
	SpreadStep      float64 // Radians between multishot arrows
	DrawCurve       ease.TweenFunc
}

// DashConfig contains dash impulse values.
type DashConfig struct {
	Speed    float64
	Duration float64
	Cooldown float64
}

// SpecialConfig configures the charged heavy shot and the explosive arrow.
type SpecialConfig struct {
	Enabled   bool
	MinCharge float64
	Cooldown  float64
	Damage    float64
	Speed     float64
	Piercing  int

	ExplosiveCooldown float64
	ExplosiveDamage   float64
	ExplosiveSpeed    float64
	ExplosiveRadius   float64
}

// ProjectileConfig holds projectile and on-hit effect values.
type ProjectileConfig struct {
	Radius          float64
	HomingLifespan  float64 // Seconds a homing arrow lives
	HomingTurnRate  float64 // Radians per second
	HomingRange     float64 // Max acquisition distance
	ExplosionRadius float64 // Base radius for the explosive upgrade
	ExplosionDamage float64 // Damage per second inside the blast
	FrostDuration   float64 // Slow duration applied by frost arrows
}

// EffectConfig holds lifetimes for area effects.
type EffectConfig struct {
	ExplosionLife float64
	StompLife     float64
}

// ProgressionConfig drives XP and level-up.
type ProgressionConfig struct {
	Enabled     bool
	BaseXP      float64 // XP needed for level 2
	Growth      float64 // Multiplier per level
	LevelUpHeal float64
	OfferCount  int
}

// ModeConfig is the complete tuning table for one game mode.
type ModeConfig struct {
	Mode        GameMode
	Arena       ArenaConfig
	Actor       ActorConfig
	Bow         BowConfig
	Dash        DashConfig
	Special     SpecialConfig
	Projectile  ProjectileConfig
	Effect      EffectConfig
	Progression ProgressionConfig
}

var (
	Sim   SimConfig
	Modes map[GameMode]*ModeConfig
)

// ForMode returns the tuning table for mode, falling back to PvP.
func ForMode(mode GameMode) *ModeConfig {
	if m, ok := Modes[mode]; ok {
		return m
	}
	return Modes[ModePvP]
}

func init() {
	Sim = SimConfig{
		MaxDelta: 0.1,
		Seed:     42,
	}

	Modes = map[GameMode]*ModeConfig{
		ModePvP: {
			Mode: ModePvP,
			Arena: ArenaConfig{
				Width:      1200,
				Height:     800,
				SpawnInset: 120,
				CellSize:   32,
			},
			Actor: ActorConfig{
				Radius:     20,
				MaxHealth:  100,
				BaseSpeed:  220,
				SlowFactor: 0.5,
				HitInvuln:  0,
			},
			Bow: BowConfig{
				MinDrawTime:     0.2,
				MaxDrawTime:     1.0,
				MinDamage:       5,
				MaxDamage:       25,
				MinSpeed:        400,
				MaxSpeed:        900,
				WeakShotDamage:  1,
				ShotCooldown:    0.3,
				DrawMovePenalty: 0.4,
				SpreadStep:      0.15,
				DrawCurve:       ease.Linear,
			},
			Dash: DashConfig{
				Speed:    700,
				Duration: 0.2,
				Cooldown: 1.5,
			},
			Special: SpecialConfig{
				Enabled:           true,
				MinCharge:         0.5,
				Cooldown:          5,
				Damage:            50,
				Speed:             1000,
				Piercing:          2,
				ExplosiveCooldown: 8,
				ExplosiveDamage:   15,
				ExplosiveSpeed:    600,
				ExplosiveRadius:   80,
			},
			Projectile: ProjectileConfig{
				Radius:          4,
				HomingLifespan:  3,
				HomingTurnRate:  3,
				HomingRange:     400,
				ExplosionRadius: 60,
				ExplosionDamage: 40,
				FrostDuration:   1.5,
			},
			Effect: EffectConfig{
				ExplosionLife: 0.3,
				StompLife:     0.4,
			},
			Progression: ProgressionConfig{
				Enabled: false,
			},
		},
		ModePvE: {
			Mode: ModePvE,
			Arena: ArenaConfig{
				Width:      1000,
				Height:     700,
				SpawnInset: 350,
				CellSize:   32,
			},
			Actor: ActorConfig{
				Radius:     18,
				MaxHealth:  100,
				BaseSpeed:  200,
				SlowFactor: 0.5,
				HitInvuln:  0.5,
			},
			Bow: BowConfig{
				MinDrawTime:     0.2,
				MaxDrawTime:     0.8,
				MinDamage:       10,
				MaxDamage:       30,
				MinSpeed:        450,
				MaxSpeed:        850,
				WeakShotDamage:  1,
				ShotCooldown:    0.25,
				DrawMovePenalty: 0.4,
				SpreadStep:      0.15,
				DrawCurve:       ease.OutQuad,
			},
			Dash: DashConfig{
				Speed:    650,
				Duration: 0.18,
				Cooldown: 2.0,
			},
			Special: SpecialConfig{
				Enabled: false,
			},
			Projectile: ProjectileConfig{
				Radius:          4,
				HomingLifespan:  2.5,
				HomingTurnRate:  4,
				HomingRange:     350,
				ExplosionRadius: 50,
				ExplosionDamage: 60,
				FrostDuration:   2,
			},
			Effect: EffectConfig{
				ExplosionLife: 0.3,
				StompLife:     0.4,
			},
			Progression: ProgressionConfig{
				Enabled:     true,
				BaseXP:      100,
				Growth:      1.2,
				LevelUpHeal: 20,
				OfferCount:  3,
			},
		},
	}
}
