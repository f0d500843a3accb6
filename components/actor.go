package components

import (
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// Controls is the per-tick control vector. Human input adapters and the AI
// controller both produce it; the simulation does not care which.
type Controls struct {
	Up, Down, Left, Right bool
	Shoot                 bool
	Dash                  bool
	Special               bool
	ExplosiveArrow        bool
}

// MoveDir returns the unit movement direction encoded by the direction keys.
// Opposing keys cancel; diagonals are normalized.
func (c Controls) MoveDir() gamemath.Vec2 {
	var d gamemath.Vec2
	if c.Up {
		d.Y--
	}
	if c.Down {
		d.Y++
	}
	if c.Left {
		d.X--
	}
	if c.Right {
		d.X++
	}
	return d.Normalize()
}

// Input is everything an actor contributes to one tick.
type Input struct {
	Controls Controls
	Aim      float64 // Radians
}

// Animation tags exposed to renderers.
const (
	AnimIdle    = "idle"
	AnimRun     = "run"
	AnimDraw    = "draw"
	AnimDash    = "dash"
	AnimStunned = "stunned"
	AnimDeath   = "death"
)

// Never is the timestamp used for events that have not happened yet.
const Never = -1e9

// Actor is a controllable archer, human or bot.
type Actor struct {
	ID       ID
	Name     string
	Pos      gamemath.Vec2
	Vel      gamemath.Vec2
	Rotation float64
	Radius   float64

	Health    float64
	MaxHealth float64

	Controls Controls
	Aim      float64

	// Bow
	IsDrawingBow  bool
	DrawStartTime float64 // Only meaningful while IsDrawingBow
	MinDrawTime   float64
	MaxDrawTime   float64
	LastShotTime  float64

	// Modifiers
	MoveSpeedMultiplier    float64
	DamageMultiplier       float64
	XPMultiplier           float64
	DashCooldownMultiplier float64

	// Dash
	IsDashing    bool
	DashVelocity gamemath.Vec2 // Only meaningful while IsDashing
	DashTimer    float64
	DashCooldown float64

	IsInvulnerable       bool
	InvulnerabilityTimer float64
	StunTimer            float64
	SlowTimer            float64

	// Special attacks
	IsChargingSpecial bool
	SpecialStartTime  float64
	SpecialCooldown   float64
	ExplosiveCooldown float64

	// Progression
	Level           int
	XP              float64
	XPToNextLevel   float64
	Upgrades        map[config.UpgradeID]int
	PendingUpgrades int // levels gained but not yet spent on an upgrade

	// Weapon stats derived from upgrades
	MultiShotLevel  int
	Piercing        int
	Bounces         int
	ExplosiveRadius float64
	Frost           bool
	Homing          bool

	Score          int
	Kills          int
	LastHitBy      ID
	IsDead         bool
	AnimationState string

	// Bot is set for AI-controlled actors.
	Bot *BotData
}

func (a *Actor) IsStunned() bool { return a.StunTimer > 0 }
func (a *Actor) IsSlowed() bool  { return a.SlowTimer > 0 }
func (a *Actor) IsBot() bool     { return a.Bot != nil }
func (a *Actor) Alive() bool     { return !a.IsDead && a.Health > 0 }

func (a Actor) clone() Actor {
	if a.Upgrades != nil {
		up := make(map[config.UpgradeID]int, len(a.Upgrades))
		for k, v := range a.Upgrades {
			up[k] = v
		}
		a.Upgrades = up
	}
	if a.Bot != nil {
		b := *a.Bot
		a.Bot = &b
	}
	return a
}

// BotState is the AI controller's high-level mode.
type BotState int

const (
	BotStatePatrolling BotState = iota
	BotStateAttacking
)

func (s BotState) String() string {
	if s == BotStateAttacking {
		return "attacking"
	}
	return "patrolling"
}

// BotData is the AI controller's memory for one actor.
type BotData struct {
	Difficulty config.BotDifficulty
	State      BotState

	TargetID       ID
	TargetIsEnemy  bool // PvE companions hunt enemies instead of actors
	DecisionTimer  float64
	ActionCooldown float64 // Movement is frozen while > 0
	ShotCooldown   float64

	PatrolPoint    gamemath.Vec2
	HasPatrolPoint bool
	StrafeSign     float64 // +1 or -1, rolled per decision
	WantsDash      bool    // Rolled per decision; dash away when crowded

	HeldMove Controls // Movement replayed during ActionCooldown
}
