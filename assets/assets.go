// Package assets bundles the arenas shipped with the game.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/leveldata"
	"github.com/automoto/archer-arena/systems/factory"
)

const arenaDir = "arenas"

//go:embed arenas/*.tmx
var arenaFS embed.FS

// ArenaLoader parses the embedded arenas once and caches them by name.
type ArenaLoader struct {
	data  map[string]*leveldata.ArenaData
	names []string
}

// NewArenaLoader loads every embedded .tmx file.
func NewArenaLoader() (*ArenaLoader, error) {
	data, names, err := leveldata.LoadAllArenas(arenaFS, arenaDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded arenas: %w", err)
	}
	return &ArenaLoader{data: data, names: names}, nil
}

// Names returns the sorted arena names.
func (l *ArenaLoader) Names() []string {
	return l.names
}

// Arena builds a fresh arena for name.
func (l *ArenaLoader) Arena(name string, cellSize int) (*components.Arena, error) {
	d, ok := l.data[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found", name)
	}
	return factory.ArenaFromLevel(d, cellSize), nil
}
