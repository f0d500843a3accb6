package components

import "github.com/automoto/archer-arena/shared/gamemath"

// Enemy is a PvE wave enemy.
type Enemy struct {
	ID       ID
	Type     string
	Pos      gamemath.Vec2
	Vel      gamemath.Vec2
	Rotation float64
	Radius   float64

	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64

	AttackCooldown  float64 // Seconds until the next contact hit
	ContactCooldown float64 // Value AttackCooldown resets to after a hit
	StompCooldown   float64

	Value   int
	XPValue float64

	IsSlowed  bool
	SlowTimer float64

	LastHitBy ID
}
