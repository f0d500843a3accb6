package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names recognised in arena files.
const (
	LayerWalls        = "walls"
	GroupWalls        = "Walls"
	GroupPillars      = "Pillars"
	GroupPlayerSpawns = "PlayerSpawn"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers
// can pass embed.FS (client) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles from the walls layer, merged into horizontal runs
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		solid := make([]bool, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			solid[i] = tile != nil && !tile.IsNil()
		}
		data.Walls = append(data.Walls, MergeTileRuns(solid, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Walls = append(data.Walls, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPillars:
			for _, o := range og.Objects {
				r := math.Min(o.Width, o.Height) / 2
				if radius := o.Properties.GetFloat("radius"); radius > 0 {
					r = radius
				}
				if r <= 0 {
					continue
				}
				data.Pillars = append(data.Pillars, Pillar{X: o.X + o.Width/2, Y: o.Y + o.Height/2, Radius: r})
			}
		case GroupPlayerSpawns:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns by index, then left-to-right, for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("arena %s has no size", tmxPath)
	}

	return data, nil
}

// MergeTileRuns turns a row-major solid grid into one rectangle per
// horizontal run of solid tiles.
func MergeTileRuns(solid []bool, width, height int, tileW, tileH float64) []SolidRect {
	var rects []SolidRect
	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			if i := y*width + x; i >= len(solid) || !solid[i] {
				x++
				continue
			}
			start := x
			for x < width && y*width+x < len(solid) && solid[y*width+x] {
				x++
			}
			rects = append(rects, SolidRect{
				X: float64(start) * tileW,
				Y: float64(y) * tileH,
				W: float64(x-start) * tileW,
				H: tileH,
			})
		}
	}
	return rects
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
