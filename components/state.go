package components

import (
	"math/rand/v2"
	"slices"

	"github.com/automoto/archer-arena/config"
)

// ID identifies an actor, projectile, enemy or effect within a match.
// Zero means none.
type ID uint32

// State is one immutable snapshot of a match. The tick pipeline never
// modifies a State in place; it clones and returns the successor.
type State struct {
	Mode  config.GameMode
	Rules *config.ModeConfig // Shared, read-only
	Arena *Arena             // Shared, read-only

	Tick   uint64
	Time   float64 // Seconds since match start
	NextID ID
	RNG    rand.PCG

	Actors      []Actor
	Projectiles []Projectile
	Enemies     []Enemy
	Effects     []Effect

	// PvE
	Wave         *Wave
	PreviousWave *Wave
	WavesCleared int
	Score        int

	// Level-up pause
	IsLevelingUp      bool
	LevelingActorID   ID
	AvailableUpgrades []config.UpgradeID

	StartingActors int
	IsGameOver     bool
	Winner         ID // PvP survivor; 0 on a tie or wipe

	// Events lists what happened during the tick that produced this state.
	Events []Event
}

// Clone returns a copy that shares nothing mutable with s except the
// read-only Rules and Arena.
func (s *State) Clone() *State {
	c := *s

	c.Actors = cloneEach(s.Actors, Actor.clone)
	c.Projectiles = cloneEach(s.Projectiles, Projectile.clone)
	c.Enemies = slices.Clone(s.Enemies)
	c.Effects = cloneEach(s.Effects, Effect.clone)
	if s.Wave != nil {
		w := *s.Wave
		c.Wave = &w
	}
	if s.PreviousWave != nil {
		w := *s.PreviousWave
		c.PreviousWave = &w
	}
	c.AvailableUpgrades = slices.Clone(s.AvailableUpgrades)
	c.Events = slices.Clone(s.Events)
	return &c
}

// Rand returns a generator drawing from the snapshot's seeded stream.
func (s *State) Rand() *rand.Rand {
	return rand.New(&s.RNG)
}

// AllocID hands out the next entity ID.
func (s *State) AllocID() ID {
	s.NextID++
	return s.NextID
}

// Actor returns the actor with id, or nil.
func (s *State) Actor(id ID) *Actor {
	for i := range s.Actors {
		if s.Actors[i].ID == id {
			return &s.Actors[i]
		}
	}
	return nil
}

// Enemy returns the enemy with id, or nil.
func (s *State) Enemy(id ID) *Enemy {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			return &s.Enemies[i]
		}
	}
	return nil
}

// AliveActors counts actors that are still in the fight.
func (s *State) AliveActors() int {
	n := 0
	for i := range s.Actors {
		if s.Actors[i].Alive() {
			n++
		}
	}
	return n
}

// Emit appends an event to the current tick's log.
func (s *State) Emit(e Event) {
	s.Events = append(s.Events, e)
}

func cloneEach[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i := range in {
		out[i] = fn(in[i])
	}
	return out
}
