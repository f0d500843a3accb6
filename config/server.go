package config

import "time"

// ServerConfig contains the dedicated server defaults. Flags override them.
type ServerConfig struct {
	Name          string
	Version       string // Required client version (empty = accept any)
	Port          uint
	TickRate      int
	Mode          GameMode
	Slots         int // Actor slots; empty ones are filled with bots
	BotDifficulty BotDifficulty
	LevelPath     string // Optional .tmx arena name, looked up under AssetsDir/arenas
	AssetsDir     string
	AppName       string        // gdata application name for score storage
	RestartDelay  time.Duration // Pause between game over and the next match
	Seed          uint64        // 0 = derive from the clock
}

// Server holds the dedicated server configuration
var Server ServerConfig

func init() {
	Server = ServerConfig{
		Name:          "Archer Arena Server",
		Port:          7373,
		TickRate:      30,
		Mode:          ModePvP,
		Slots:         4,
		BotDifficulty: BotDifficultyNormal,
		AssetsDir:     "assets",
		AppName:       "archer_arena",
		RestartDelay:  5 * time.Second,
	}
}
