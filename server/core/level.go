package core

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/shared/leveldata"
	"github.com/automoto/archer-arena/systems/factory"
)

// ArenaDir is the directory under the assets root that holds .tmx arenas.
const ArenaDir = "arenas"

// LoadAllArenas loads all .tmx arenas from the given assets directory,
// returning them keyed by stem name plus a sorted name list.
func LoadAllArenas(assetsDir string, cellSize int) (map[string]*components.Arena, []string, error) {
	dataMap, names, err := leveldata.LoadAllArenas(os.DirFS(assetsDir), ArenaDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}

	arenas := make(map[string]*components.Arena, len(names))
	for _, name := range names {
		a := factory.ArenaFromLevel(dataMap[name], cellSize)
		log.Printf("Loaded arena %s: %d walls, %d spawn points, %.0fx%.0f",
			name, len(a.Walls), len(a.SpawnPoints), a.Width, a.Height)
		arenas[name] = a
	}

	return arenas, names, nil
}

// LoadArena returns the named arena from assetsDir.
func LoadArena(assetsDir, name string, cellSize int) (*components.Arena, error) {
	arenas, names, err := LoadAllArenas(assetsDir, cellSize)
	if err != nil {
		return nil, err
	}
	a, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found (have %v)", name, names)
	}
	return a, nil
}
