package gamemath

// WeightedEntry is one option of a WeightedTable.
type WeightedEntry[T any] struct {
	Value  T
	Weight float64
}

// WeightedTable picks values with probability proportional to their weight.
// Entries keep insertion order so a given roll always maps to the same value.
type WeightedTable[T any] struct {
	entries []WeightedEntry[T]
	total   float64
}

// NewWeightedTable builds a table, dropping entries with a non-positive weight.
func NewWeightedTable[T any](entries ...WeightedEntry[T]) WeightedTable[T] {
	t := WeightedTable[T]{entries: make([]WeightedEntry[T], 0, len(entries))}
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		t.entries = append(t.entries, e)
		t.total += e.Weight
	}
	return t
}

func (t WeightedTable[T]) Len() int       { return len(t.entries) }
func (t WeightedTable[T]) Total() float64 { return t.total }

// Probability returns the chance of picking the i-th kept entry.
func (t WeightedTable[T]) Probability(i int) float64 {
	if t.total <= 0 || i < 0 || i >= len(t.entries) {
		return 0
	}
	return t.entries[i].Weight / t.total
}

// Pick maps roll, a uniform sample in [0, 1), onto the table.
// ok is false when the table is empty.
func (t WeightedTable[T]) Pick(roll float64) (value T, ok bool) {
	if len(t.entries) == 0 {
		return value, false
	}
	target := Clamp(roll, 0, 1) * t.total
	acc := 0.0
	for _, e := range t.entries {
		acc += e.Weight
		if target < acc {
			return e.Value, true
		}
	}
	return t.entries[len(t.entries)-1].Value, true
}
