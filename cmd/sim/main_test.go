package main

import (
	"testing"

	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateIsRepeatable(t *testing.T) {
	arena := factory.DefaultArena(config.ModePvP)
	opts := simOptions{
		Mode:       config.ModePvP,
		Arena:      arena,
		Bots:       3,
		Difficulty: config.BotDifficultyHard,
		Seed:       7,
		Ticks:      600,
		Dt:         1.0 / 60,
	}

	a := simulate(opts)
	b := simulate(opts)

	require.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Events, b.Events)
	assert.Equal(t, a.State.Tick, b.State.Tick)
	for i := range a.State.Actors {
		assert.Equal(t, a.State.Actors[i].Pos, b.State.Actors[i].Pos)
		assert.Equal(t, a.State.Actors[i].Health, b.State.Actors[i].Health)
	}
}

func TestSimulateStopsAtTickBudget(t *testing.T) {
	res := simulate(simOptions{Mode: config.ModePvE, Bots: 1, Seed: 1, Ticks: 30, Dt: 1.0 / 60})

	assert.LessOrEqual(t, res.Ticks, 30)
	assert.Equal(t, uint64(res.Ticks), res.State.Tick)
	assert.Equal(t, 1, res.Events["wave_start"], "the opening wave is announced once")
	assert.Contains(t, res.summary(), "mode=pve")
}
