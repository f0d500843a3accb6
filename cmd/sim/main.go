// Command sim runs bot-only matches without a window and prints the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/automoto/archer-arena/assets"
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/systems"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/google/uuid"
)

type simOptions struct {
	Mode       config.GameMode
	Arena      *components.Arena
	Bots       int
	Difficulty config.BotDifficulty
	Seed       uint64
	Ticks      int
	Dt         float64
}

type simResult struct {
	State  *components.State
	Ticks  int
	Events map[string]int
}

// simulate steps a bot-only match until it ends or the tick budget runs out.
func simulate(opts simOptions) simResult {
	bots := make([]config.BotDifficulty, opts.Bots)
	for i := range bots {
		bots[i] = opts.Difficulty
	}
	s := factory.NewMatch(factory.MatchOptions{
		Mode:  opts.Mode,
		Seed:  opts.Seed,
		Arena: opts.Arena,
		Bots:  bots,
	})

	res := simResult{Events: make(map[string]int)}
	count := func() {
		for _, e := range s.Events {
			res.Events[e.Kind.String()]++
		}
	}
	count()
	for res.Ticks < opts.Ticks && !s.IsGameOver {
		s = systems.Update(s, opts.Dt)
		res.Ticks++
		count()
	}
	res.State = s
	return res
}

func (r simResult) summary() string {
	s := r.State
	var b strings.Builder
	fmt.Fprintf(&b, "mode=%s ticks=%d time=%.1fs over=%t", s.Mode, r.Ticks, s.Time, s.IsGameOver)
	if s.Mode == config.ModePvE {
		fmt.Fprintf(&b, " waves=%d score=%d", s.WavesCleared, s.Score)
	} else if w := s.Actor(s.Winner); w != nil {
		fmt.Fprintf(&b, " winner=%q", w.Name)
	}
	for _, kind := range slices.Sorted(maps.Keys(r.Events)) {
		fmt.Fprintf(&b, "\n  %-14s %d", kind, r.Events[kind])
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		fmt.Fprintf(&b, "\n  %-20s hp=%5.1f kills=%d level=%d dead=%t", a.Name, a.Health, a.Kills, a.Level, a.IsDead)
	}
	return b.String()
}

func main() {
	modeName := flag.String("mode", "pvp", "Game mode: pvp or pve")
	bots := flag.Int("bots", 4, "Number of bots")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	ticks := flag.Int("ticks", 60*60*5, "Maximum ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "Seconds per tick")
	seed := flag.Uint64("seed", config.Sim.Seed, "Match seed")
	arenaName := flag.String("arena", "", "Built-in arena name (empty = open field)")
	record := flag.String("record", "", "Store the result under this app name")
	flag.Parse()

	mode, ok := config.ParseGameMode(*modeName)
	if !ok {
		log.Fatalf("Unknown mode %q", *modeName)
	}
	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}

	opts := simOptions{Mode: mode, Bots: *bots, Difficulty: diff, Seed: *seed, Ticks: *ticks, Dt: *dt}
	if *arenaName != "" {
		loader, err := assets.NewArenaLoader()
		if err != nil {
			log.Fatalf("Failed to load arenas: %v", err)
		}
		opts.Arena, err = loader.Arena(*arenaName, config.ForMode(mode).Arena.CellSize)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
	}

	start := time.Now()
	res := simulate(opts)
	log.Printf("[sim] %s\n  (%s wall time)", res.summary(), time.Since(start).Round(time.Millisecond))

	if *record != "" && res.State.IsGameOver {
		book := persistence.NewScoreBook(persistence.OpenOrMemory(*record))
		if err := book.Record(persistence.ResultFromState(uuid.NewString(), res.State, time.Now())); err != nil {
			log.Printf("Warning: Could not record result: %v", err)
		}
	}
}
