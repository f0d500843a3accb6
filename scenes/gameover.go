package scenes

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/fonts"
	"github.com/automoto/archer-arena/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// GameOverScene displays the result of a local match
type GameOverScene struct {
	ctx    *Context
	result persistence.MatchResult
	setup  MatchSetup
	once   sync.Once

	best    persistence.MatchResult
	hasBest bool
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(ctx *Context, result persistence.MatchResult, setup MatchSetup) *GameOverScene {
	return &GameOverScene{ctx: ctx, result: result, setup: setup}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR):
		gs.setup.Seed = 0
		gs.ctx.Changer.ChangeScene(NewLocalMatchScene(gs.ctx, gs.setup))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		gs.ctx.Changer.ChangeScene(NewMenuScene(gs.ctx))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	w := screen.Bounds().Dx()
	regular := fonts.Regular.Get()
	small := fonts.Small.Get()
	r := gs.result

	title := "GAME OVER"
	switch {
	case r.Mode == cfg.ModePvP.String() && r.Winner != "":
		title = r.Winner + " WINS"
	case r.Mode == cfg.ModePvP.String():
		title = "DRAW"
	}
	b := text.BoundString(fonts.Title.Get(), title)
	text.Draw(screen, title, fonts.Title.Get(), (w-b.Dx())/2, 110, cfg.Palette.Highlight)

	summary := fmt.Sprintf("%s  %.0fs", r.Arena, r.Duration)
	if r.Mode == cfg.ModePvE.String() {
		summary = fmt.Sprintf("Score %d  Waves cleared %d  %.0fs", r.Score, r.WavesCleared, r.Duration)
	}
	b = text.BoundString(regular, summary)
	text.Draw(screen, summary, regular, (w-b.Dx())/2, 150, cfg.Palette.Text)

	y := 210
	for _, p := range gs.ranked() {
		c := cfg.Palette.Human
		if p.Bot {
			c = cfg.Palette.Bot
		}
		if !p.Alive {
			c = cfg.Palette.TextDim
		}
		line := fmt.Sprintf("%-20s  kills %2d  score %5d  lv %d", p.Name, p.Kills, p.Score, p.Level)
		text.Draw(screen, line, regular, w/2-220, y, c)
		y += 28
	}

	if gs.hasBest {
		line := fmt.Sprintf("Best %s: score %d  waves %d  (%s)", gs.best.Mode, gs.best.Score, gs.best.WavesCleared, gs.best.EndedAt.Format("2006-01-02"))
		if gs.best.MatchID == r.MatchID {
			line = "New best! " + line
		}
		text.Draw(screen, line, small, w/2-220, y+20, cfg.Palette.Highlight)
	}

	help := "Enter play again   Esc menu"
	text.Draw(screen, help, small, w/2-220, screen.Bounds().Dy()-30, cfg.Palette.TextDim)
}

func (gs *GameOverScene) configure() {
	gs.best, gs.hasBest = gs.ctx.Scores.Best(gs.result.Mode)
}

// ranked orders players by kills, then score.
func (gs *GameOverScene) ranked() []persistence.PlayerResult {
	players := append([]persistence.PlayerResult(nil), gs.result.Players...)
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Kills != players[j].Kills {
			return players[i].Kills > players[j].Kills
		}
		return players[i].Score > players[j].Score
	})
	return players
}
