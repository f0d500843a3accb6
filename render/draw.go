package render

import (
	"image/color"
	"math"

	"github.com/automoto/archer-arena/components"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Offset returns the translation that centers arena on a screen of the
// given size.
func Offset(arena *components.Arena, screenW, screenH int) gamemath.Vec2 {
	if arena == nil {
		return gamemath.Vec2{}
	}
	return gamemath.V(
		math.Max(0, (float64(screenW)-arena.Width)/2),
		math.Max(0, (float64(screenH)-arena.Height)/2),
	)
}

// Draw renders the whole frame.
func Draw(screen *ebiten.Image, f Frame, debug bool) {
	screen.Fill(cfg.Palette.Background)
	b := screen.Bounds()
	off := Offset(f.Arena, b.Dx(), b.Dy())

	drawArena(screen, f.Arena, off)
	for i := range f.Effects {
		drawEffect(screen, &f.Effects[i], off)
	}
	for i := range f.Enemies {
		drawEnemy(screen, &f.Enemies[i], off)
	}
	for i := range f.Actors {
		drawActor(screen, &f.Actors[i], off)
	}
	for i := range f.Projectiles {
		drawProjectile(screen, &f.Projectiles[i], off)
	}

	drawHUD(screen, f.HUD)
	if debug {
		drawDebug(screen, f, off)
	}
}

func drawArena(screen *ebiten.Image, a *components.Arena, off gamemath.Vec2) {
	if a == nil {
		return
	}
	vector.FillRect(screen, float32(off.X), float32(off.Y), float32(a.Width), float32(a.Height), cfg.Palette.Floor, false)
	for i := range a.Walls {
		w := &a.Walls[i]
		switch w.Shape {
		case components.WallPillar:
			vector.FillCircle(screen, float32(w.Center.X+off.X), float32(w.Center.Y+off.Y), float32(w.Radius), cfg.Palette.Wall, true)
		default:
			vector.FillRect(screen, float32(w.Rect.X+off.X), float32(w.Rect.Y+off.Y), float32(w.Rect.W), float32(w.Rect.H), cfg.Palette.Wall, false)
		}
	}
}

func drawActor(screen *ebiten.Image, a *ActorView, off gamemath.Vec2) {
	x, y := float32(a.Pos.X+off.X), float32(a.Pos.Y+off.Y)
	r := float32(a.Radius)

	body := cfg.Palette.Human
	switch {
	case a.Dead:
		body = cfg.Palette.Dead
	case a.Local:
		body = cfg.Palette.Local
	case a.Bot:
		body = cfg.Palette.Bot
	}
	if a.Invuln && !a.Dead {
		body.A = 140
	}
	vector.FillCircle(screen, x, y, r, body, true)
	if a.Dead {
		return
	}

	if a.Slowed {
		vector.StrokeCircle(screen, x, y, r+2, 2, cfg.Palette.Frost, true)
	}
	if a.Stunned {
		vector.StrokeCircle(screen, x, y, r+5, 2, cfg.Palette.Highlight, true)
	}

	// Bow: aim line that grows with the draw
	aim := gamemath.FromAngle(a.Aim)
	length := a.Radius + 8 + 14*a.DrawRatio
	tip := a.Pos.Add(aim.Scale(length)).Add(off)
	vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Y), 3, cfg.Palette.Arrow, true)
	if a.DrawRatio >= 1 {
		vector.FillCircle(screen, float32(tip.X), float32(tip.Y), 3, cfg.Palette.Highlight, true)
	}

	drawBar(screen, a.Pos.Add(off).Sub(gamemath.V(a.Radius, a.Radius+10)), a.Radius*2, 4, a.Health/math.Max(1, a.MaxHealth), cfg.Palette.HealthBar)
	drawLabel(screen, a.Name, a.Pos.X+off.X-a.Radius, a.Pos.Y+off.Y-a.Radius-14, cfg.Palette.TextDim)
}

func drawProjectile(screen *ebiten.Image, p *ProjectileView, off gamemath.Vec2) {
	c := cfg.Palette.Arrow
	switch {
	case p.Explosive:
		c = cfg.Palette.Explosive
	case p.Special:
		c = cfg.Palette.Special
	case p.Frost:
		c = cfg.Palette.Frost
	}
	dir := gamemath.FromAngle(p.Rotation)
	length := 14.0
	if p.Weak {
		length = 8
	}
	head := p.Pos.Add(off)
	tail := head.Sub(dir.Scale(length))
	vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(head.X), float32(head.Y), float32(math.Max(2, p.Radius/2)), c, true)
	if p.Homing {
		vector.StrokeCircle(screen, float32(head.X), float32(head.Y), float32(p.Radius+2), 1, cfg.Palette.Highlight, true)
	}
}

func drawEnemy(screen *ebiten.Image, e *EnemyView, off gamemath.Vec2) {
	c, ok := cfg.Palette.EnemyColors[e.Type]
	if !ok {
		c = cfg.Palette.Bot
	}
	x, y := float32(e.Pos.X+off.X), float32(e.Pos.Y+off.Y)
	vector.FillCircle(screen, x, y, float32(e.Radius), c, true)
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, float32(e.Radius+2), 2, cfg.Palette.Frost, true)
	}
	if e.Health < e.MaxHealth {
		drawBar(screen, e.Pos.Add(off).Sub(gamemath.V(e.Radius, e.Radius+8)), e.Radius*2, 3, e.Health/math.Max(1, e.MaxHealth), cfg.Palette.HealthBar)
	}
}

func drawEffect(screen *ebiten.Image, e *EffectView, off gamemath.Vec2) {
	c := cfg.Palette.Explosion
	if e.Type == string(components.EffectStomp) {
		c = cfg.Palette.Stomp
	}
	c.A = uint8(float64(c.A) * gamemath.Clamp(e.Life, 0.2, 1))
	vector.FillCircle(screen, float32(e.Pos.X+off.X), float32(e.Pos.Y+off.Y), float32(e.Radius), c, true)
}

func drawBar(screen *ebiten.Image, at gamemath.Vec2, w, h, fraction float64, fill color.NRGBA) {
	fraction = gamemath.Clamp(fraction, 0, 1)
	vector.FillRect(screen, float32(at.X), float32(at.Y), float32(w), float32(h), cfg.Palette.HealthBack, false)
	vector.FillRect(screen, float32(at.X), float32(at.Y), float32(w*fraction), float32(h), fill, false)
}

func drawDebug(screen *ebiten.Image, f Frame, off gamemath.Vec2) {
	if f.Arena != nil && f.Arena.Space != nil {
		for _, obj := range f.Arena.Space.Objects() {
			vector.StrokeRect(screen, float32(obj.X+off.X), float32(obj.Y+off.Y), float32(obj.W), float32(obj.H), 1, color.NRGBA{255, 0, 0, 255}, false)
		}
	}
	bottom := float64(screen.Bounds().Dy())
	for i, line := range f.Debug {
		drawLabel(screen, line, 10, bottom-20-float64(i)*14, cfg.Palette.TextDim)
	}
}
