package netcomponents

import "github.com/yohamta/donburi"

// NetMatchData mirrors the match-wide fields of the simulation snapshot.
// Exactly one entity carries it.
type NetMatchData struct {
	MatchID string
	Mode    int
	Arena   string
	Tick    uint64
	Time    float64

	// Last Stand
	Wave          int
	WaveRemaining int // Enemies not yet spawned plus enemies alive
	WavesCleared  int
	Score         int

	IsLevelingUp    bool
	LevelingActorID uint32
	Offers          []string

	IsGameOver bool
	Winner     uint32
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
