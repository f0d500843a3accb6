package systems

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// UpdateMovement maps controls to velocity, integrates positions, resolves
// walls and clamps actors to the arena.
func UpdateMovement(s *components.State, dt float64) {
	for i := range s.Actors {
		a := &s.Actors[i]
		if !a.Alive() {
			a.Vel = gamemath.Vec2{}
			a.AnimationState = components.AnimDeath
			continue
		}

		switch {
		case a.IsStunned():
			a.Vel = gamemath.Vec2{}
		case a.IsDashing:
			a.Vel = a.DashVelocity
		default:
			a.Vel = a.Controls.MoveDir().Scale(actorSpeed(s, a))
		}

		a.Pos = a.Pos.Add(a.Vel.Scale(dt))
		a.Pos = pushOutOfWalls(s.Arena, a.Pos, a.Radius)
		a.Pos = clampToArena(s.Arena, a.Pos, a.Radius)

		if a.IsDashing {
			a.DashTimer -= dt
			if a.DashTimer <= 0 {
				a.IsDashing = false
				a.DashTimer = 0
				a.DashVelocity = gamemath.Vec2{}
			}
		}

		if !a.IsStunned() && !math.IsNaN(a.Aim) && !math.IsInf(a.Aim, 0) {
			a.Rotation = a.Aim
		}
		a.AnimationState = animationFor(a)
	}
}

func actorSpeed(s *components.State, a *components.Actor) float64 {
	speed := s.Rules.Actor.BaseSpeed * a.MoveSpeedMultiplier
	if a.IsDrawingBow {
		speed *= s.Rules.Bow.DrawMovePenalty
	}
	if a.IsSlowed() {
		speed *= s.Rules.Actor.SlowFactor
	}
	return speed
}

func animationFor(a *components.Actor) string {
	switch {
	case !a.Alive():
		return components.AnimDeath
	case a.IsStunned():
		return components.AnimStunned
	case a.IsDashing:
		return components.AnimDash
	case a.IsDrawingBow:
		return components.AnimDraw
	case !a.Vel.IsZero():
		return components.AnimRun
	}
	return components.AnimIdle
}

// pushOutOfWalls moves a circle out of every wall it overlaps. Two passes
// settle corners where two walls meet.
func pushOutOfWalls(arena *components.Arena, pos gamemath.Vec2, radius float64) gamemath.Vec2 {
	if arena == nil {
		return pos
	}
	for pass := 0; pass < 2; pass++ {
		moved := false
		area := gamemath.Rect{X: pos.X - radius, Y: pos.Y - radius, W: 2 * radius, H: 2 * radius}
		arena.WallsNear(area, func(w *components.Wall) bool {
			if c, hit := w.Collide(pos, radius); hit {
				pos = pos.Add(c.Normal.Scale(c.Depth))
				moved = true
			}
			return true
		})
		if !moved {
			break
		}
	}
	return pos
}

func clampToArena(arena *components.Arena, pos gamemath.Vec2, radius float64) gamemath.Vec2 {
	if arena == nil {
		return pos
	}
	return gamemath.Vec2{
		X: gamemath.Clamp(pos.X, radius, arena.Width-radius),
		Y: gamemath.Clamp(pos.Y, radius, arena.Height-radius),
	}
}
