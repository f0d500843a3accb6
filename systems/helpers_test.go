package systems

import (
	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems/factory"
)

// emptyArena returns the mode's default-sized arena with only the given walls.
func emptyArena(mode config.GameMode, walls ...components.Wall) *components.Arena {
	rules := config.ForMode(mode)
	return factory.NewArena("test", rules.Arena.Width, rules.Arena.Height, walls, nil, rules.Arena.CellSize)
}

// newMatchAt builds a match of human actors placed at positions, all aiming
// right.
func newMatchAt(mode config.GameMode, arena *components.Arena, positions ...gamemath.Vec2) *components.State {
	names := make([]string, len(positions))
	for i := range names {
		names[i] = "p" + string(rune('1'+i))
	}
	s := factory.NewMatch(factory.MatchOptions{
		Mode:    mode,
		Seed:    12345,
		Arena:   arena,
		Players: names,
	})
	for i, p := range positions {
		s.Actors[i].Pos = p
		s.Actors[i].Aim = 0
		s.Actors[i].Rotation = 0
	}
	return s
}

func stepInput(s *components.State, dt float64, id components.ID, c components.Controls, aim float64) *components.State {
	return Step(s, dt, map[components.ID]components.Input{id: {Controls: c, Aim: aim}})
}

func hasEvent(s *components.State, kind components.EventKind, source components.ID) bool {
	for _, e := range s.Events {
		if e.Kind == kind && e.SourceID == source {
			return true
		}
	}
	return false
}

func testEnemy(s *components.State, name string, pos gamemath.Vec2) *components.Enemy {
	s.Enemies = append(s.Enemies, factory.NewEnemy(config.Enemies[name], s.AllocID(), pos, 1))
	return &s.Enemies[len(s.Enemies)-1]
}
