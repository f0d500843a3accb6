package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// UpdateEffects applies area damage for this tick and prunes expired effects.
func UpdateEffects(s *components.State, dt float64) {
	if len(s.Effects) == 0 {
		return
	}
	kept := s.Effects[:0]
	for i := range s.Effects {
		e := s.Effects[i]
		step := min(dt, e.Life)
		e.Life -= dt

		switch e.Type {
		case components.EffectExplosion:
			applyExplosion(s, &e, step)
		case components.EffectStomp:
			applyStomp(s, &e, step)
		}

		if e.Life > 0 {
			kept = append(kept, e)
		}
	}
	clear(s.Effects[len(kept):])
	s.Effects = kept
}

func applyExplosion(s *components.State, e *components.Effect, step float64) {
	amount := e.Damage * step
	if s.Mode == config.ModePvE {
		for i := range s.Enemies {
			en := &s.Enemies[i]
			if en.Health > 0 && gamemath.CirclesOverlap(e.Pos, e.Radius, en.Pos, en.Radius) {
				damageEnemy(s, en, amount, e.OwnerID)
			}
		}
		return
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.ID == e.OwnerID || !gamemath.CirclesOverlap(e.Pos, e.Radius, a.Pos, a.Radius) {
			continue
		}
		damageActor(s, a, amount, e.OwnerID)
	}
}

// applyStomp damages actors in range and stuns each of them once.
func applyStomp(s *components.State, e *components.Effect, step float64) {
	for i := range s.Actors {
		a := &s.Actors[i]
		if !a.Alive() || a.IsInvulnerable || !gamemath.CirclesOverlap(e.Pos, e.Radius, a.Pos, a.Radius) {
			continue
		}
		if !containsID(e.StunnedIDs, a.ID) {
			e.StunnedIDs = append(e.StunnedIDs, a.ID)
			a.StunTimer = max(a.StunTimer, e.StunDuration)
			a.IsDashing = false
			a.DashTimer = 0
			a.DashVelocity = gamemath.Vec2{}
		}
		damageActor(s, a, e.Damage*step, e.OwnerID)
	}
}

// EffectDisplayRadius eases an effect's drawn radius from zero to full over
// the first half of its life.
func EffectDisplayRadius(e *components.Effect) float64 {
	if e.MaxLife <= 0 {
		return e.Radius
	}
	elapsed := e.MaxLife - e.Life
	grow := e.MaxLife / 2
	if elapsed >= grow {
		return e.Radius
	}
	return float64(ease.OutCubic(float32(elapsed), 0, float32(e.Radius), float32(grow)))
}

func containsID(ids []components.ID, id components.ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
