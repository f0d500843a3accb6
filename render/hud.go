package render

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/fonts"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawLabel(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	text.Draw(screen, s, fonts.Small.Get(), int(x), int(y), c)
}

func drawHUD(screen *ebiten.Image, h HUDView) {
	regular := fonts.Regular.Get()
	w := screen.Bounds().Dx()

	top := fmt.Sprintf("%s  %s", h.Mode, clock(h.Time))
	if h.Mode == cfg.ModePvE {
		top = fmt.Sprintf("Wave %d  (%d left)   Score %d   Cleared %d   %s",
			h.Wave, h.WaveLeft, h.Score, h.WavesCleared, clock(h.Time))
	}
	text.Draw(screen, top, regular, 12, 22, cfg.Palette.Text)

	if h.MaxHealth > 0 {
		drawBar(screen, gamemath.V(12, 32), 200, 10, h.Health/h.MaxHealth, cfg.Palette.HealthBar)
		if h.XPNext > 0 {
			drawBar(screen, gamemath.V(12, 46), 200, 5, h.XP/h.XPNext, cfg.Palette.XPBar)
			drawLabel(screen, fmt.Sprintf("Lv %d", h.Level), 218, 52, cfg.Palette.TextDim)
		}
		cd := fmt.Sprintf("Dash %s", ready(h.DashCooldown))
		if h.Mode == cfg.ModePvP {
			cd += fmt.Sprintf("   Special %s", ready(h.SpecialCooldown))
		}
		drawLabel(screen, cd, 12, 68, cfg.Palette.TextDim)
	}

	if h.Status != "" {
		text.Draw(screen, h.Status, regular, w-12-len(h.Status)*8, 22, cfg.Palette.Highlight)
	}

	switch {
	case h.GameOver:
		drawGameOver(screen, h)
	case len(h.Offers) > 0:
		drawOffers(screen, h.Offers)
	case h.WaitingOnUpgrade:
		centered(screen, "Another archer is choosing an upgrade...", fonts.Regular, 60, cfg.Palette.Highlight)
	}
}

func drawOffers(screen *ebiten.Image, offers []cfg.UpgradeID) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.Palette.Overlay, false)
	centered(screen, "LEVEL UP", fonts.Title, b.Dy()/2-90, cfg.Palette.Highlight)

	for i, id := range offers {
		u, ok := cfg.LookupUpgrade(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("[%d] %s  %s", i+1, u.Name, u.Description)
		centered(screen, line, fonts.Regular, b.Dy()/2-30+i*28, cfg.Palette.Text)
	}
}

func drawGameOver(screen *ebiten.Image, h HUDView) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.Palette.Overlay, false)

	title := "GAME OVER"
	sub := fmt.Sprintf("Survived %d waves  Score %d", h.WavesCleared, h.Score)
	if h.Mode == cfg.ModePvP {
		title = "DRAW"
		if h.Winner != "" {
			title = h.Winner + " WINS"
		}
		sub = "Last archer standing after " + clock(h.Time)
	}
	centered(screen, title, fonts.Title, b.Dy()/2-20, cfg.Palette.Highlight)
	centered(screen, sub, fonts.Regular, b.Dy()/2+20, cfg.Palette.Text)
}

func centered(screen *ebiten.Image, s string, name fonts.FontName, y int, c color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, c)
}

func clock(t float64) string {
	s := int(math.Max(0, t))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func ready(cooldown float64) string {
	if cooldown <= 0 {
		return "ready"
	}
	return fmt.Sprintf("%.1fs", cooldown)
}
