package systems

import (
	"math"
	"sort"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
)

// UpdateProjectiles steers, integrates and collides every arrow, dropping
// the ones that leave the arena, stop against a wall or run out of pierce.
func UpdateProjectiles(s *components.State, dt float64) {
	if len(s.Projectiles) == 0 {
		return
	}
	targets := targetOrder(s)

	kept := s.Projectiles[:0]
	for i := range s.Projectiles {
		p := s.Projectiles[i]
		if stepProjectile(s, &p, dt, targets) {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// hitTarget is an enemy or actor an arrow can strike, in stable ID order.
type hitTarget struct {
	id      components.ID
	isEnemy bool
	index   int
}

func targetOrder(s *components.State) []hitTarget {
	var targets []hitTarget
	if s.Mode == config.ModePvE {
		for i := range s.Enemies {
			targets = append(targets, hitTarget{id: s.Enemies[i].ID, isEnemy: true, index: i})
		}
	} else {
		for i := range s.Actors {
			targets = append(targets, hitTarget{id: s.Actors[i].ID, index: i})
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].id < targets[j].id })
	return targets
}

// stepProjectile advances one arrow. It returns false when the arrow is gone.
func stepProjectile(s *components.State, p *components.Projectile, dt float64, targets []hitTarget) bool {
	if p.IsHoming {
		p.Lifespan -= dt
		if p.Lifespan <= 0 {
			return false
		}
		steerHoming(s, p, dt)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if angle, ok := p.Vel.Angle(); ok {
		p.Rotation = angle
	}

	if !insideArena(s.Arena, p.Pos, p.Radius) {
		return false
	}

	if !bounceOffWalls(s, p) {
		return false
	}

	for _, t := range targets {
		if p.HasHit(t.id) {
			continue
		}
		if !strikeTarget(s, p, t) {
			continue
		}
		p.HitIDs = append(p.HitIDs, t.id)
		if p.IsExplosive {
			explode(s, p)
		}
		p.PiercingLeft--
		if p.PiercingLeft < 0 {
			return false
		}
	}
	return true
}

func insideArena(arena *components.Arena, pos gamemath.Vec2, radius float64) bool {
	if arena == nil {
		return true
	}
	return pos.X >= -radius && pos.X <= arena.Width+radius &&
		pos.Y >= -radius && pos.Y <= arena.Height+radius
}

// bounceOffWalls reflects the arrow off the first wall it touches while it
// has bounces left. It returns false when the arrow is stopped.
func bounceOffWalls(s *components.State, p *components.Projectile) bool {
	alive := true
	area := gamemath.Rect{X: p.Pos.X - p.Radius, Y: p.Pos.Y - p.Radius, W: 2 * p.Radius, H: 2 * p.Radius}
	s.Arena.WallsNear(area, func(w *components.Wall) bool {
		c, hit := w.Collide(p.Pos, p.Radius)
		if !hit {
			return true
		}
		if p.BouncesLeft <= 0 {
			if p.IsExplosive {
				explode(s, p)
			}
			alive = false
			return false
		}
		p.BouncesLeft--
		if p.Vel.Dot(c.Normal) < 0 {
			p.Vel = p.Vel.Reflect(c.Normal)
		}
		p.Pos = p.Pos.Add(c.Normal.Scale(c.Depth))
		if angle, ok := p.Vel.Angle(); ok {
			p.Rotation = angle
		}
		return false
	})
	return alive
}

// strikeTarget applies the arrow to t if they overlap. It reports whether the
// hit counted.
func strikeTarget(s *components.State, p *components.Projectile, t hitTarget) bool {
	if t.isEnemy {
		e := &s.Enemies[t.index]
		if e.Health <= 0 || !gamemath.CirclesOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			return false
		}
		damageEnemy(s, e, p.Damage, p.OwnerID)
		if p.IsFrost {
			e.SlowTimer = max(e.SlowTimer, s.Rules.Projectile.FrostDuration)
			e.IsSlowed = true
		}
		return true
	}

	a := &s.Actors[t.index]
	if a.ID == p.OwnerID || !a.Alive() || !gamemath.CirclesOverlap(p.Pos, p.Radius, a.Pos, a.Radius) {
		return false
	}
	// Dashing or otherwise invulnerable actors are passed through.
	if a.IsInvulnerable {
		return false
	}
	damageActor(s, a, p.Damage, p.OwnerID)
	if p.IsFrost {
		a.SlowTimer = max(a.SlowTimer, s.Rules.Projectile.FrostDuration)
	}
	return true
}

func explode(s *components.State, p *components.Projectile) {
	s.Effects = append(s.Effects, factory.NewExplosion(s.Rules, s.AllocID(), p.OwnerID, p.Pos, p.ExplosionRadius))
	s.Emit(components.Event{Kind: components.EventExplosion, SourceID: p.OwnerID, Pos: p.Pos, Amount: p.ExplosionRadius})
}

// steerHoming turns the arrow toward its target at a bounded rate, picking a
// new target when the old one is gone.
func steerHoming(s *components.State, p *components.Projectile, dt float64) {
	target, ok := homingTargetPos(s, p)
	if !ok {
		p.TargetID = 0
		target, ok = acquireHomingTarget(s, p)
		if !ok {
			return
		}
	}

	speed := p.Vel.Len()
	current, ok := p.Vel.Angle()
	if !ok {
		return
	}
	desired, ok := target.Sub(p.Pos).Angle()
	if !ok {
		return
	}
	heading := gamemath.TurnToward(current, desired, s.Rules.Projectile.HomingTurnRate*dt)
	p.Vel = gamemath.FromAngle(heading).Scale(speed)
}

func homingTargetPos(s *components.State, p *components.Projectile) (gamemath.Vec2, bool) {
	if p.TargetID == 0 || p.HasHit(p.TargetID) {
		return gamemath.Vec2{}, false
	}
	if s.Mode == config.ModePvE {
		if e := s.Enemy(p.TargetID); e != nil && e.Health > 0 {
			return e.Pos, true
		}
		return gamemath.Vec2{}, false
	}
	if a := s.Actor(p.TargetID); a != nil && a.Alive() && a.ID != p.OwnerID {
		return a.Pos, true
	}
	return gamemath.Vec2{}, false
}

func acquireHomingTarget(s *components.State, p *components.Projectile) (gamemath.Vec2, bool) {
	maxDist := s.Rules.Projectile.HomingRange
	if s.Mode == config.ModePvE {
		best := math.MaxFloat64
		var pos gamemath.Vec2
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if e.Health <= 0 || p.HasHit(e.ID) {
				continue
			}
			if d := e.Pos.Dist(p.Pos); d <= maxDist && d < best {
				best, pos, p.TargetID = d, e.Pos, e.ID
			}
		}
		return pos, p.TargetID != 0
	}

	best := math.MaxFloat64
	var pos gamemath.Vec2
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.ID == p.OwnerID || !a.Alive() || p.HasHit(a.ID) {
			continue
		}
		if d := a.Pos.Dist(p.Pos); d <= maxDist && d < best {
			best, pos, p.TargetID = d, a.Pos, a.ID
		}
	}
	return pos, p.TargetID != 0
}
