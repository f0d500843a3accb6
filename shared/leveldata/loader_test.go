package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	data, err := LoadArena(os.DirFS("testdata"), "arenas/duel.tmx")
	require.NoError(t, err)

	assert.Equal(t, "duel", data.Name)
	assert.Equal(t, 640, data.Width)
	assert.Equal(t, 480, data.Height)

	require.Len(t, data.Walls, 2)
	assert.Equal(t, SolidRect{X: 280, Y: 40, W: 40, H: 120}, data.Walls[0])

	require.Len(t, data.Pillars, 1)
	assert.Equal(t, Pillar{X: 330, Y: 230, Radius: 30}, data.Pillars[0])

	require.Len(t, data.SpawnPoints, 2)
	assert.Equal(t, 0, data.SpawnPoints[0].Index)
	assert.Equal(t, 100.0, data.SpawnPoints[0].X)
	assert.Equal(t, 1, data.SpawnPoints[1].Index)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "arenas/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(os.DirFS("testdata"), "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"duel"}, names)
	assert.Contains(t, arenas, "duel")

	_, _, err = LoadAllArenas(os.DirFS("testdata"), "nothing-here")
	assert.Error(t, err)
}

func TestMergeTileRuns(t *testing.T) {
	// 4x2 grid:
	// # # . #
	// . # # #
	solid := []bool{
		true, true, false, true,
		false, true, true, true,
	}
	rects := MergeTileRuns(solid, 4, 2, 10, 10)
	assert.Equal(t, []SolidRect{
		{X: 0, Y: 0, W: 20, H: 10},
		{X: 30, Y: 0, W: 10, H: 10},
		{X: 10, Y: 10, W: 30, H: 10},
	}, rects)

	assert.Nil(t, MergeTileRuns(make([]bool, 8), 4, 2, 10, 10))
}
