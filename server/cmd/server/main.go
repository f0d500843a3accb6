package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/archer-arena/assets"
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/server/core"
	"github.com/automoto/archer-arena/shared/protocol"
)

func main() {
	def := config.Server
	port := flag.Uint("port", def.Port, "Server port")
	tickRate := flag.Int("tickrate", def.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", def.Name, "Server display name")
	version := flag.String("version", def.Version, "Required client version (empty = accept any)")
	modeName := flag.String("mode", def.Mode.String(), "Game mode: pvp or pve")
	slots := flag.Int("slots", def.Slots, "Archer slots; empty slots are played by bots")
	difficulty := flag.String("difficulty", def.BotDifficulty.String(), "Bot difficulty: easy, normal or hard")
	arenaName := flag.String("arena", def.LevelPath, "Arena name under <assets>/arenas (empty = built-in)")
	assetsDir := flag.String("assets", def.AssetsDir, "Assets directory")
	seed := flag.Uint64("seed", def.Seed, "Match seed (0 = from clock)")
	appName := flag.String("appname", def.AppName, "Storage name for match results")
	restart := flag.Duration("restart", def.RestartDelay, "Delay between game over and the next match")
	flag.Parse()

	mode, ok := config.ParseGameMode(*modeName)
	if !ok {
		log.Fatalf("Unknown mode %q", *modeName)
	}
	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var arena *components.Arena
	if *arenaName != "" {
		cellSize := config.ForMode(mode).Arena.CellSize
		a, err := core.LoadArena(*assetsDir, *arenaName, cellSize)
		if err != nil {
			log.Printf("Warning: %v, trying built-in arenas", err)
			a, err = builtinArena(*arenaName, cellSize)
			if err != nil {
				log.Fatalf("Failed to load arena: %v", err)
			}
		}
		arena = a
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	scores := persistence.NewScoreBook(persistence.OpenOrMemory(*appName))
	session := core.NewSession(core.SessionOptions{
		Mode:         mode,
		Slots:        *slots,
		Difficulty:   diff,
		Arena:        arena,
		Seed:         *seed,
		RestartDelay: restart.Seconds(),
	}, scores)

	server := core.NewServer(core.Options{
		Name:     *name,
		Version:  *version,
		TickRate: *tickRate,
	}, session)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Archer Arena server %q on port %d (mode: %s, slots: %d, tick rate: %d/s, version: %s)",
		*name, *port, mode, *slots, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func builtinArena(name string, cellSize int) (*components.Arena, error) {
	loader, err := assets.NewArenaLoader()
	if err != nil {
		return nil, err
	}
	return loader.Arena(name, cellSize)
}
