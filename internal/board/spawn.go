package board

import "math/rand"

// Spawner chooses the value of a newly spawned tile.
type Spawner interface {
	SpawnValue(rng *rand.Rand) int
}

const (
	// Standard spawn distribution: 2 three times out of four, otherwise 4.
	twoWeight  = 75
	fourWeight = 25
)

// defaultSpawner yields 2 or 4 with the standard 75/25 weighting.
type defaultSpawner struct{}

func (defaultSpawner) SpawnValue(rng *rand.Rand) int {
	if rng.Intn(twoWeight+fourWeight) < twoWeight {
		return 2
	}
	return 4
}

// DefaultSpawner returns the standard 2/4 spawner.
func DefaultSpawner() Spawner {
	return defaultSpawner{}
}

// SpawnRandomTile fills one empty cell, chosen uniformly at random, with a
// value from the board's spawner. It returns false without changing anything
// if the board is full, already terminal, or the spawner yields no valid tile.
func (b *Board) SpawnRandomTile() bool {
	if b.state.Terminal() {
		return false
	}

	empty := b.emptyIndices()
	if len(empty) == 0 {
		return false
	}

	idx := empty[b.rng.Intn(len(empty))]
	v := Cell(b.spawner.SpawnValue(b.rng))
	if v.IsEmpty() || !v.Valid() {
		return false
	}
	b.cells[idx] = v
	return true
}

// emptyIndices returns the row-major indices of all empty cells.
func (b *Board) emptyIndices() []int {
	empty := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c.IsEmpty() {
			empty = append(empty, i)
		}
	}
	return empty
}
