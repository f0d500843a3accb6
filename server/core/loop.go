package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the server at a fixed rate and pushes snapshots after
// every step.
type GameLoop struct {
	server   *Server
	tickRate int
	interval time.Duration
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	tickRate = max(tickRate, 1)
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		interval: time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

// Dt is the fixed step each tick integrates, independent of wall time.
func (g *GameLoop) Dt() float64 {
	return 1 / float64(g.tickRate)
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			start := time.Now()
			g.tick()
			if took := time.Since(start); took > g.interval {
				log.Printf("[loop] Warning: tick took %s (budget %s)", took, g.interval)
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.Step(g.Dt())

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}
