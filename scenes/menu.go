package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/archer-arena/network"
	"github.com/automoto/archer-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene is the match setup screen shown at start and after a match.
type MenuScene struct {
	ctx     *Context
	once    sync.Once
	setupUI *ui.SetupUI
	message string
}

// NewMenuScene creates a new menu scene
func NewMenuScene(ctx *Context) *MenuScene {
	return &MenuScene{ctx: ctx}
}

// WithMessage shows a one-line notice, such as why a connection ended.
func (ms *MenuScene) WithMessage(msg string) *MenuScene {
	ms.message = msg
	return ms
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.setupUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.setupUI == nil {
		return
	}
	ms.setupUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.setupUI = ui.NewSetupUI(ms.ctx.Settings, ms.ctx.Arenas.Names(), ms.play, ms.join, ms.settingsChanged)
	ms.setupUI.SetStatus(ms.message)
	ms.setupUI.SetBest(ms.bestLine())
}

func (ms *MenuScene) settingsChanged() {
	ms.ctx.SaveSettings()
	ms.setupUI.SetBest(ms.bestLine())
}

func (ms *MenuScene) play() {
	ms.ctx.SaveSettings()
	ms.ctx.Changer.ChangeScene(NewLocalMatchScene(ms.ctx, ms.matchSetup()))
}

func (ms *MenuScene) join() {
	ms.ctx.SaveSettings()
	s := ms.ctx.Settings
	client := network.NewClient()
	client.Connect(s.ServerAddress, ms.ctx.Version, s.PlayerName)
	ms.ctx.Changer.ChangeScene(NewNetworkedScene(ms.ctx, client))
}

// bestLine summarizes the best recorded result for the selected mode.
func (ms *MenuScene) bestLine() string {
	mode := ui.Mode(ms.ctx.Settings)
	best, ok := ms.ctx.Scores.Best(mode.String())
	if !ok {
		return ""
	}
	line := fmt.Sprintf("Best %s: score %d, %d waves, %s", best.Mode, best.Score, best.WavesCleared, best.Arena)
	if best.Winner != "" {
		line += ", won by " + best.Winner
	}
	return line
}

func (ms *MenuScene) matchSetup() MatchSetup {
	s := ms.ctx.Settings
	return MatchSetup{
		Mode:       ui.Mode(s),
		Arena:      s.Arena,
		PlayerName: s.PlayerName,
		Bots:       s.Bots,
		Difficulty: ui.Difficulty(s),
	}
}
