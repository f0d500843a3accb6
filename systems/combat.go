package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
)

// UpdateActorTimers counts down every per-actor cooldown and status timer.
func UpdateActorTimers(s *components.State, dt float64) {
	for i := range s.Actors {
		a := &s.Actors[i]
		a.DashCooldown = gamemath.ApproachZero(a.DashCooldown, dt)
		a.SpecialCooldown = gamemath.ApproachZero(a.SpecialCooldown, dt)
		a.ExplosiveCooldown = gamemath.ApproachZero(a.ExplosiveCooldown, dt)
		a.StunTimer = gamemath.ApproachZero(a.StunTimer, dt)
		a.SlowTimer = gamemath.ApproachZero(a.SlowTimer, dt)
		a.InvulnerabilityTimer = gamemath.ApproachZero(a.InvulnerabilityTimer, dt)
		a.IsInvulnerable = a.InvulnerabilityTimer > 0
	}
}

// UpdateCombat runs the bow, dash and special state machines for every
// living actor and spawns the resulting projectiles.
func UpdateCombat(s *components.State) {
	for i := range s.Actors {
		a := &s.Actors[i]
		if !a.Alive() {
			continue
		}
		if a.IsStunned() {
			cancelCharges(a)
			continue
		}
		updateBow(s, a)
		updateDash(s, a)
		if s.Rules.Special.Enabled {
			updateSpecial(s, a)
			updateExplosiveArrow(s, a)
		}
	}
}

func cancelCharges(a *components.Actor) {
	a.IsDrawingBow = false
	a.DrawStartTime = 0
	a.IsChargingSpecial = false
	a.SpecialStartTime = 0
}

// updateBow: Idle -> Drawing on press, Drawing -> Idle on release. A release
// fires only if the shot cooldown has elapsed.
func updateBow(s *components.State, a *components.Actor) {
	now := s.Time
	shoot := a.Controls.Shoot

	if shoot && !a.IsDrawingBow {
		a.IsDrawingBow = true
		a.DrawStartTime = now
		return
	}
	if shoot || !a.IsDrawingBow {
		return
	}

	drawTime := now - a.DrawStartTime
	a.IsDrawingBow = false
	a.DrawStartTime = 0

	if now-a.LastShotTime < s.Rules.Bow.ShotCooldown {
		return
	}
	a.LastShotTime = now
	releaseArrows(s, a, drawTime)
}

func releaseArrows(s *components.State, a *components.Actor, drawTime float64) {
	bow := s.Rules.Bow

	if drawTime < a.MinDrawTime {
		p := factory.NewArrow(s.Rules, s.AllocID(), a, factory.ArrowSpec{
			Kind:   factory.ArrowWeak,
			Angle:  a.Aim,
			Speed:  bow.MinSpeed,
			Damage: bow.WeakShotDamage,
		})
		s.Projectiles = append(s.Projectiles, p)
		s.Emit(components.Event{Kind: components.EventWeakShot, SourceID: a.ID, Pos: p.Pos, Amount: p.Damage})
		return
	}

	power := gamemath.ChargeRatio(drawTime, a.MaxDrawTime)
	f := gamemath.ChargeCurve(bow.DrawCurve, power)
	damage := gamemath.Lerp(bow.MinDamage, bow.MaxDamage, f) * a.DamageMultiplier
	speed := gamemath.Lerp(bow.MinSpeed, bow.MaxSpeed, f)

	for _, angle := range factory.SpreadAngles(a.Aim, bow.SpreadStep, 1+2*a.MultiShotLevel) {
		p := factory.NewArrow(s.Rules, s.AllocID(), a, factory.ArrowSpec{
			Kind:   factory.ArrowNormal,
			Angle:  angle,
			Speed:  speed,
			Damage: damage,
		})
		s.Projectiles = append(s.Projectiles, p)
	}
	s.Emit(components.Event{Kind: components.EventShot, SourceID: a.ID, Pos: a.Pos, Amount: power})
}

func updateDash(s *components.State, a *components.Actor) {
	if !a.Controls.Dash || a.DashCooldown > 0 || a.IsDashing {
		return
	}
	dash := s.Rules.Dash

	dir := a.Controls.MoveDir()
	if dir.IsZero() {
		dir = gamemath.FromAngle(a.Aim)
	}

	a.IsDashing = true
	a.DashVelocity = dir.Scale(dash.Speed)
	a.DashTimer = dash.Duration
	a.DashCooldown = dash.Cooldown * a.DashCooldownMultiplier
	a.InvulnerabilityTimer = max(a.InvulnerabilityTimer, dash.Duration)
	a.IsInvulnerable = true

	s.Emit(components.Event{Kind: components.EventDash, SourceID: a.ID, Pos: a.Pos})
}

// updateSpecial charges the heavy shot while Special is held and fires it on
// release once MinCharge has been reached.
func updateSpecial(s *components.State, a *components.Actor) {
	special := s.Rules.Special
	now := s.Time

	if a.Controls.Special {
		if !a.IsChargingSpecial && a.SpecialCooldown <= 0 {
			a.IsChargingSpecial = true
			a.SpecialStartTime = now
		}
		return
	}
	if !a.IsChargingSpecial {
		return
	}

	held := now - a.SpecialStartTime
	a.IsChargingSpecial = false
	a.SpecialStartTime = 0
	if held < special.MinCharge || a.SpecialCooldown > 0 {
		return
	}

	p := factory.NewArrow(s.Rules, s.AllocID(), a, factory.ArrowSpec{
		Kind:   factory.ArrowSpecial,
		Angle:  a.Aim,
		Speed:  special.Speed,
		Damage: special.Damage * a.DamageMultiplier,
	})
	s.Projectiles = append(s.Projectiles, p)
	a.SpecialCooldown = special.Cooldown
	s.Emit(components.Event{Kind: components.EventSpecialShot, SourceID: a.ID, Pos: p.Pos, Amount: p.Damage})
}

func updateExplosiveArrow(s *components.State, a *components.Actor) {
	if !a.Controls.ExplosiveArrow || a.ExplosiveCooldown > 0 {
		return
	}
	special := s.Rules.Special

	p := factory.NewArrow(s.Rules, s.AllocID(), a, factory.ArrowSpec{
		Kind:   factory.ArrowExplosive,
		Angle:  a.Aim,
		Speed:  special.ExplosiveSpeed,
		Damage: special.ExplosiveDamage * a.DamageMultiplier,
	})
	s.Projectiles = append(s.Projectiles, p)
	a.ExplosiveCooldown = special.ExplosiveCooldown
	s.Emit(components.Event{Kind: components.EventSpecialShot, SourceID: a.ID, Pos: p.Pos, Amount: p.Damage})
}
