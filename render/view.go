// Package render draws a match from plain view structs, so the local
// simulation and the network client share one renderer.
package render

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems"
)

type ActorView struct {
	ID        uint32
	Name      string
	Pos       gamemath.Vec2
	Radius    float64
	Aim       float64
	Health    float64
	MaxHealth float64
	DrawRatio float64
	Level     int
	Kills     int

	Dead, Dashing, Stunned, Slowed, Invuln, Bot, Local bool
}

type ProjectileView struct {
	Pos      gamemath.Vec2
	Rotation float64
	Radius   float64

	Special, Weak, Explosive, Frost, Homing bool
}

type EnemyView struct {
	Type      string
	Pos       gamemath.Vec2
	Rotation  float64
	Radius    float64
	Health    float64
	MaxHealth float64
	Slowed    bool
}

type EffectView struct {
	Type   string
	Pos    gamemath.Vec2
	Radius float64
	Life   float64 // Remaining fraction
}

// HUDView holds match-wide and local-player numbers for the overlay.
type HUDView struct {
	Mode         config.GameMode
	Time         float64
	Wave         int
	WaveLeft     int
	WavesCleared int
	Score        int

	Health, MaxHealth float64
	Level             int
	XP, XPNext        float64
	DashCooldown      float64
	SpecialCooldown   float64

	// Level-up choice for the local player
	Offers []config.UpgradeID

	// Another player is choosing an upgrade
	WaitingOnUpgrade bool

	GameOver bool
	Winner   string
	Status   string // Connection or pause text
}

// Frame is everything one Draw call needs.
type Frame struct {
	Arena       *components.Arena
	Actors      []ActorView
	Projectiles []ProjectileView
	Enemies     []EnemyView
	Effects     []EffectView
	HUD         HUDView
	Debug       []string // Extra lines drawn when debug is on
}

// FromState builds a frame from a simulation snapshot. localID marks the
// archer whose stats fill the HUD.
func FromState(s *components.State, localID components.ID) Frame {
	f := Frame{Arena: s.Arena}

	for i := range s.Actors {
		a := &s.Actors[i]
		draw := 0.0
		if a.IsDrawingBow {
			draw = gamemath.ChargeRatio(s.Time-a.DrawStartTime, a.MaxDrawTime)
		}
		f.Actors = append(f.Actors, ActorView{
			ID:        uint32(a.ID),
			Name:      a.Name,
			Pos:       a.Pos,
			Radius:    a.Radius,
			Aim:       a.Aim,
			Health:    a.Health,
			MaxHealth: a.MaxHealth,
			DrawRatio: draw,
			Level:     a.Level,
			Kills:     a.Kills,
			Dead:      a.IsDead,
			Dashing:   a.IsDashing,
			Stunned:   a.IsStunned(),
			Slowed:    a.IsSlowed(),
			Invuln:    a.IsInvulnerable,
			Bot:       a.IsBot(),
			Local:     a.ID == localID,
		})
		if a.Bot != nil {
			f.Debug = append(f.Debug, a.Name+": "+a.Bot.State.String())
		}
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		f.Projectiles = append(f.Projectiles, ProjectileView{
			Pos:       p.Pos,
			Rotation:  p.Rotation,
			Radius:    p.Radius,
			Special:   p.IsSpecial,
			Weak:      p.IsWeakShot,
			Explosive: p.IsExplosive,
			Frost:     p.IsFrost,
			Homing:    p.IsHoming,
		})
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		f.Enemies = append(f.Enemies, EnemyView{
			Type:      e.Type,
			Pos:       e.Pos,
			Rotation:  e.Rotation,
			Radius:    e.Radius,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Slowed:    e.IsSlowed,
		})
	}

	for i := range s.Effects {
		e := &s.Effects[i]
		life := 0.0
		if e.MaxLife > 0 {
			life = e.Life / e.MaxLife
		}
		f.Effects = append(f.Effects, EffectView{
			Type:   string(e.Type),
			Pos:    e.Pos,
			Radius: systems.EffectDisplayRadius(e),
			Life:   life,
		})
	}

	h := HUDView{
		Mode:         s.Mode,
		Time:         s.Time,
		WavesCleared: s.WavesCleared,
		Score:        s.Score,
		GameOver:     s.IsGameOver,
	}
	if s.Wave != nil {
		h.Wave = s.Wave.Number
		h.WaveLeft = s.Wave.RemainingEnemies + len(s.Enemies)
	}
	if a := s.Actor(localID); a != nil {
		h.Health, h.MaxHealth = a.Health, a.MaxHealth
		h.Level, h.XP, h.XPNext = a.Level, a.XP, a.XPToNextLevel
		h.DashCooldown, h.SpecialCooldown = a.DashCooldown, a.SpecialCooldown
	}
	if s.IsLevelingUp {
		if s.LevelingActorID == localID {
			h.Offers = s.AvailableUpgrades
		} else {
			h.WaitingOnUpgrade = true
		}
	}
	if w := s.Actor(s.Winner); w != nil {
		h.Winner = w.Name
	}
	f.HUD = h
	return f
}
