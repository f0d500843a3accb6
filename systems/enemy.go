package systems

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
)

// Enemies stop closing in once they overlap their target by this much, so
// contact damage can land without stacking on the actor's center.
const enemyContactOverlap = 2.0

// UpdateEnemies ticks enemy timers, chases the nearest living actor and
// triggers guardian stomps.
func UpdateEnemies(s *components.State, dt float64) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.AttackCooldown = gamemath.ApproachZero(e.AttackCooldown, dt)
		e.StompCooldown = gamemath.ApproachZero(e.StompCooldown, dt)
		e.SlowTimer = gamemath.ApproachZero(e.SlowTimer, dt)
		e.IsSlowed = e.SlowTimer > 0

		target := nearestLivingActor(s, e.Pos, 0)
		if target == nil {
			e.Vel = gamemath.Vec2{}
			continue
		}

		toward := target.Pos.Sub(e.Pos)
		dist := toward.Len()
		speed := e.Speed
		if e.IsSlowed {
			speed *= s.Rules.Actor.SlowFactor
		}
		step := math.Min(speed*dt, dist-(e.Radius+target.Radius)+enemyContactOverlap)
		if step > 0 {
			e.Vel = toward.Normalize().Scale(speed)
			e.Pos = e.Pos.Add(toward.Normalize().Scale(step))
		} else {
			e.Vel = gamemath.Vec2{}
		}
		if angle, ok := toward.Angle(); ok {
			e.Rotation = angle
		}
		e.Pos = pushOutOfWalls(s.Arena, e.Pos, e.Radius)

		tryStomp(s, e, dist)
	}
	separateEnemies(s.Enemies)
}

func tryStomp(s *components.State, e *components.Enemy, targetDist float64) {
	t, ok := config.Enemies[e.Type]
	if !ok || t.StompRadius <= 0 || e.StompCooldown > 0 || targetDist > t.StompRange {
		return
	}
	s.Effects = append(s.Effects, factory.NewStomp(s.Rules, s.AllocID(), e.ID, e.Pos, t))
	e.StompCooldown = t.StompCooldown
	s.Emit(components.Event{Kind: components.EventStomp, SourceID: e.ID, Pos: e.Pos, Amount: t.StompRadius})
}

// separateEnemies pushes overlapping enemies apart, half each.
func separateEnemies(enemies []components.Enemy) {
	for i := range enemies {
		for j := i + 1; j < len(enemies); j++ {
			a, b := &enemies[i], &enemies[j]
			c, hit := gamemath.CircleCircle(a.Pos, a.Radius, b.Pos, b.Radius)
			if !hit {
				continue
			}
			push := c.Normal.Scale(c.Depth / 2)
			a.Pos = a.Pos.Add(push)
			b.Pos = b.Pos.Sub(push)
		}
	}
}

// nearestLivingActor returns the closest living actor to pos, skipping
// exclude. Ties go to the lower ID.
func nearestLivingActor(s *components.State, pos gamemath.Vec2, exclude components.ID) *components.Actor {
	var best *components.Actor
	bestDist := math.MaxFloat64
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.ID == exclude || !a.Alive() {
			continue
		}
		d := a.Pos.Sub(pos).LenSq()
		if d < bestDist || (d == bestDist && best != nil && a.ID < best.ID) {
			best, bestDist = a, d
		}
	}
	return best
}

// nearestEnemy returns the closest living enemy to pos within maxDist.
func nearestEnemy(s *components.State, pos gamemath.Vec2, maxDist float64) *components.Enemy {
	var best *components.Enemy
	bestDist := maxDist * maxDist
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Health <= 0 {
			continue
		}
		d := e.Pos.Sub(pos).LenSq()
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
