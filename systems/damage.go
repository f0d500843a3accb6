package systems

import "github.com/automoto/archer-arena/components"

// damageActor applies damage unless the actor is invulnerable. It reports
// whether the damage landed.
func damageActor(s *components.State, a *components.Actor, amount float64, source components.ID) bool {
	if a.IsInvulnerable || !a.Alive() || amount <= 0 {
		return false
	}
	a.Health -= amount
	a.LastHitBy = source
	if inv := s.Rules.Actor.HitInvuln; inv > 0 {
		a.InvulnerabilityTimer = max(a.InvulnerabilityTimer, inv)
		a.IsInvulnerable = true
	}
	s.Emit(components.Event{Kind: components.EventHit, SourceID: source, TargetID: a.ID, Pos: a.Pos, Amount: amount})
	return true
}

func damageEnemy(s *components.State, e *components.Enemy, amount float64, source components.ID) {
	if amount <= 0 {
		return
	}
	e.Health -= amount
	if source != 0 {
		e.LastHitBy = source
	}
	s.Emit(components.Event{Kind: components.EventHit, SourceID: source, TargetID: e.ID, Pos: e.Pos, Amount: amount})
}
