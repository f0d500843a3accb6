package factory

import (
	"math"
	"slices"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/shared/leveldata"
	"github.com/solarlune/resolv"
)

// NewArena builds an arena and registers every wall in a resolv space.
func NewArena(name string, width, height float64, walls []components.Wall, spawns []gamemath.Vec2, cellSize int) *components.Arena {
	if cellSize <= 0 {
		cellSize = 32
	}
	// resolv drops partial cells; pad by one so edge walls stay queryable
	cols := int(math.Ceil(width/float64(cellSize))) + 1
	rows := int(math.Ceil(height/float64(cellSize))) + 1
	space := resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize)

	a := &components.Arena{
		Name:        name,
		Width:       width,
		Height:      height,
		Walls:       slices.Clone(walls),
		SpawnPoints: slices.Clone(spawns),
		Space:       space,
	}

	for i := range a.Walls {
		w := &a.Walls[i]
		b := w.Bounds()
		tag := components.ResolvSolid
		if w.Shape == components.WallPillar {
			tag = components.ResolvPillar
		}
		obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
		obj.Data = w // Link for O(1) lookup
		space.Add(obj)
	}

	return a
}

// ArenaFromLevel converts parsed level data into an arena.
func ArenaFromLevel(data *leveldata.ArenaData, cellSize int) *components.Arena {
	walls := make([]components.Wall, 0, len(data.Walls)+len(data.Pillars))
	for _, r := range data.Walls {
		walls = append(walls, RectWall(r.X, r.Y, r.W, r.H))
	}
	for _, p := range data.Pillars {
		walls = append(walls, PillarWall(p.X, p.Y, p.Radius))
	}

	spawns := make([]gamemath.Vec2, 0, len(data.SpawnPoints))
	for _, sp := range data.SpawnPoints {
		spawns = append(spawns, gamemath.V(sp.X, sp.Y))
	}

	return NewArena(data.Name, float64(data.Width), float64(data.Height), walls, spawns, cellSize)
}

func RectWall(x, y, w, h float64) components.Wall {
	return components.Wall{Shape: components.WallRect, Rect: gamemath.Rect{X: x, Y: y, W: w, H: h}}
}

func PillarWall(cx, cy, r float64) components.Wall {
	return components.Wall{Shape: components.WallPillar, Center: gamemath.V(cx, cy), Radius: r}
}

// DefaultArena returns the built-in arena for mode.
func DefaultArena(mode config.GameMode) *components.Arena {
	rules := config.ForMode(mode)
	w, h := rules.Arena.Width, rules.Arena.Height
	inset := rules.Arena.SpawnInset
	cx, cy := w/2, h/2

	switch mode {
	case config.ModePvE:
		walls := []components.Wall{
			PillarWall(cx-220, cy-140, 28),
			PillarWall(cx+220, cy-140, 28),
			PillarWall(cx-220, cy+140, 28),
			PillarWall(cx+220, cy+140, 28),
		}
		spawns := []gamemath.Vec2{
			gamemath.V(cx-40, cy),
			gamemath.V(cx+40, cy),
			gamemath.V(cx, cy-40),
			gamemath.V(cx, cy+40),
		}
		return NewArena("last-stand", w, h, walls, spawns, rules.Arena.CellSize)
	default:
		walls := []components.Wall{
			RectWall(cx-20, cy-120, 40, 240),
			RectWall(cx-300, cy-20, 160, 40),
			RectWall(cx+140, cy-20, 160, 40),
			PillarWall(cx-260, cy-220, 30),
			PillarWall(cx+260, cy+220, 30),
		}
		spawns := []gamemath.Vec2{
			gamemath.V(inset, inset),
			gamemath.V(w-inset, h-inset),
			gamemath.V(w-inset, inset),
			gamemath.V(inset, h-inset),
		}
		return NewArena("archer-arena", w, h, walls, spawns, rules.Arena.CellSize)
	}
}
