package scenes

import (
	"github.com/automoto/archer-arena/assets"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/sfx"
	"github.com/automoto/archer-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is anything the game loop can update and draw.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = 0

// Context carries the services every scene may need.
type Context struct {
	Changer  SceneChanger
	Arenas   *assets.ArenaLoader
	Sound    *sfx.Player
	Store    persistence.ItemStore
	Scores   *persistence.ScoreBook
	Settings *persistence.SavedSettings
	Version  string
}

// SaveSettings writes the current settings; failures are only logged.
func (c *Context) SaveSettings() {
	_ = persistence.SaveSettings(c.Store, c.Settings)
}

// DefaultSettings fills in anything missing from saved settings.
func DefaultSettings(s *persistence.SavedSettings) *persistence.SavedSettings {
	if s == nil {
		s = &persistence.SavedSettings{Bots: 3, ShowDebug: cfg.C.ShowDebug}
	}
	if s.PlayerName == "" {
		s.PlayerName = cfg.C.PlayerName
	}
	if s.ServerAddress == "" {
		s.ServerAddress = cfg.C.ServerAddress
	}
	if _, ok := cfg.ParseGameMode(s.Mode); !ok {
		s.Mode = cfg.ModePvP.String()
	}
	if _, ok := cfg.ParseBotDifficulty(s.Difficulty); !ok {
		s.Difficulty = cfg.BotDifficultyNormal.String()
	}
	s.Bots = max(0, min(s.Bots, ui.MaxBots))
	return s
}

var upgradeKeys = [][]ebiten.Key{
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
}

// upgradeKeyPressed returns the offer index picked this frame, or -1.
func upgradeKeyPressed() int {
	for i, keys := range upgradeKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return i
			}
		}
	}
	return -1
}
