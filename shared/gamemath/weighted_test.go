package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWeightedTablePick(t *testing.T) {
	table := NewWeightedTable(
		WeightedEntry[string]{Value: "grunt", Weight: 3},
		WeightedEntry[string]{Value: "locked", Weight: 0},
		WeightedEntry[string]{Value: "brute", Weight: 1},
	)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 4.0, table.Total())
	assert.Equal(t, 0.75, table.Probability(0))

	v, ok := table.Pick(0)
	require.True(t, ok)
	assert.Equal(t, "grunt", v)

	v, _ = table.Pick(0.74)
	assert.Equal(t, "grunt", v)

	v, _ = table.Pick(0.75)
	assert.Equal(t, "brute", v)

	v, _ = table.Pick(1)
	assert.Equal(t, "brute", v)
}

func TestWeightedTableEmpty(t *testing.T) {
	table := NewWeightedTable[int]()
	_, ok := table.Pick(0.5)
	assert.False(t, ok)
	assert.Equal(t, 0.0, table.Probability(0))
}

func TestWeightedTableNeverPicksZeroWeight(t *testing.T) {
	table := NewWeightedTable(
		WeightedEntry[int]{Value: 1, Weight: 2},
		WeightedEntry[int]{Value: 2, Weight: 0},
		WeightedEntry[int]{Value: 3, Weight: 5},
	)
	rapid.Check(t, func(t *rapid.T) {
		v, ok := table.Pick(rapid.Float64Range(0, 1).Draw(t, "roll"))
		if !ok || v == 2 {
			t.Fatalf("picked %d (ok=%v)", v, ok)
		}
	})
}
