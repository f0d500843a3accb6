package systems

import (
	"math"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
)

// Update advances the match by dt seconds and returns the next snapshot.
// prev is never modified.
func Update(prev *components.State, dt float64) *components.State {
	return Step(prev, dt, nil)
}

// Step applies human inputs and advances the match by dt seconds. Inputs for
// unknown or bot-controlled actors are ignored.
func Step(prev *components.State, dt float64, inputs map[components.ID]components.Input) *components.State {
	next := prev.Clone()
	ApplyInputs(next, inputs)

	dt = ClampDelta(dt)
	if dt == 0 {
		return next
	}

	next.Events = nil
	if next.IsGameOver || next.IsLevelingUp {
		return next
	}

	next.Tick++
	next.Time += dt

	UpdateBots(next, dt)
	UpdateActorTimers(next, dt)
	UpdateCombat(next)
	UpdateMovement(next, dt)
	UpdateEnemies(next, dt)
	UpdateProjectiles(next, dt)
	UpdateEffects(next, dt)
	UpdateContacts(next)
	UpdateDeaths(next)
	UpdateWaves(next)
	clampHealth(next)

	return next
}

// ApplyInputs copies controls and aim onto human actors.
func ApplyInputs(s *components.State, inputs map[components.ID]components.Input) {
	if len(inputs) == 0 {
		return
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		in, ok := inputs[a.ID]
		if !ok || a.IsBot() {
			continue
		}
		a.Controls = in.Controls
		if !math.IsNaN(in.Aim) && !math.IsInf(in.Aim, 0) {
			a.Aim = in.Aim
		}
	}
}

// ClampDelta maps any delta onto [0, MaxDelta]. NaN counts as zero.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > config.Sim.MaxDelta {
		return config.Sim.MaxDelta
	}
	return dt
}

func clampHealth(s *components.State) {
	for i := range s.Actors {
		a := &s.Actors[i]
		a.Health = clampUnit(a.Health, a.MaxHealth)
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Health = clampUnit(e.Health, e.MaxHealth)
	}
}

func clampUnit(v, max float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
