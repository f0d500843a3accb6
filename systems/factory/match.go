package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// MatchOptions configures a new match.
type MatchOptions struct {
	Mode    config.GameMode
	Seed    uint64
	Rules   *config.ModeConfig // nil = config.ForMode(Mode)
	Arena   *components.Arena  // nil = DefaultArena(Mode)
	Players []string           // Human actors, in slot order
	Bots    []config.BotDifficulty
}

// NewMatch builds the opening snapshot. Humans take the first spawn points,
// bots the rest.
func NewMatch(opts MatchOptions) *components.State {
	rules := opts.Rules
	if rules == nil {
		rules = config.ForMode(opts.Mode)
	}
	arena := opts.Arena
	if arena == nil {
		arena = DefaultArena(opts.Mode)
	}

	s := &components.State{
		Mode:  opts.Mode,
		Rules: rules,
		Arena: arena,
		RNG:   *rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15),
	}

	slot := 0
	for _, name := range opts.Players {
		s.Actors = append(s.Actors, NewActor(rules, s.AllocID(), name, spawnPoint(arena, slot)))
		slot++
	}
	for i, d := range opts.Bots {
		name := fmt.Sprintf("bot-%d (%s)", i+1, d)
		s.Actors = append(s.Actors, NewBotActor(rules, s.AllocID(), name, spawnPoint(arena, slot), d))
		slot++
	}
	s.StartingActors = len(s.Actors)

	for i := range s.Actors {
		s.Actors[i].Aim = aimAtCenter(arena, s.Actors[i].Pos)
		s.Actors[i].Rotation = s.Actors[i].Aim
	}

	if opts.Mode == config.ModePvE {
		s.Wave = NewWave(1, 0)
		s.Emit(components.Event{Kind: components.EventWaveStart, Amount: 1})
	}

	return s
}

func spawnPoint(arena *components.Arena, slot int) gamemath.Vec2 {
	if len(arena.SpawnPoints) == 0 {
		return gamemath.V(arena.Width/2, arena.Height/2)
	}
	return arena.SpawnPoints[slot%len(arena.SpawnPoints)]
}

func aimAtCenter(arena *components.Arena, pos gamemath.Vec2) float64 {
	angle, _ := gamemath.V(arena.Width/2, arena.Height/2).Sub(pos).Angle()
	return angle
}
