package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Board is an n×n grid of cells stored row-major, plus the game state.
type Board struct {
	size    int
	cells   []Cell
	state   State
	rng     *rand.Rand
	spawner Spawner
}

// New creates an empty board using the standard spawner.
// A nil rng is replaced by one seeded from the clock.
func New(size int, rng *rand.Rand) (*Board, error) {
	return NewWithSpawner(size, rng, nil)
}

// NewWithSpawner creates an empty board that draws spawn values from spawner.
// A nil spawner means the standard 2/4 distribution.
func NewWithSpawner(size int, rng *rand.Rand, spawner Spawner) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new board of size %d: %w", size, ErrInvalidSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if spawner == nil {
		spawner = DefaultSpawner()
	}

	return &Board{
		size:    size,
		cells:   make([]Cell, size*size),
		state:   InProgress,
		rng:     rng,
		spawner: spawner,
	}, nil
}

// FromValues creates a board holding the given row-major layout.
func FromValues(size int, values []Cell, rng *rand.Rand) (*Board, error) {
	b, err := New(size, rng)
	if err != nil {
		return nil, err
	}
	if len(values) != size*size {
		return nil, fmt.Errorf("got %d cells for size %d: %w", len(values), size, ErrLayoutSize)
	}
	for i, v := range values {
		if !v.Valid() {
			return nil, fmt.Errorf("cell %d holds %d: %w", i, v, ErrInvalidValue)
		}
	}
	copy(b.cells, values)
	return b, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// State returns the game state as of the last IsTerminal call.
func (b *Board) State() State {
	return b.state
}

// At returns the cell at the given position, or Empty if out of range.
func (b *Board) At(row, col int) Cell {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// RenderValues returns a row-major copy of every cell.
func (b *Board) RenderValues() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns a deep copy of the board. The copy shares the rng and spawner.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = b.RenderValues()
	return &c
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	total := 0
	for _, c := range b.cells {
		total += int(c)
	}
	return total
}

// MaxTile returns the largest tile on the board.
func (b *Board) MaxTile() Cell {
	var best Cell
	for _, c := range b.cells {
		if c > best {
			best = c
		}
	}
	return best
}

// Move slides and merges every line toward the edge named by dir and reports
// whether any cell changed. It neither spawns a tile nor updates the state.
// A terminal board is left untouched.
func (b *Board) Move(dir Direction) bool {
	if b.state.Terminal() {
		return false
	}

	changed := false
	line := make([]Cell, b.size)
	for i := 0; i < b.size; i++ {
		idx := b.lineIndices(dir, i)
		for k, p := range idx {
			line[k] = b.cells[p]
		}
		for k, v := range compactLine(line) {
			if b.cells[idx[k]] != v {
				b.cells[idx[k]] = v
				changed = true
			}
		}
	}
	return changed
}

// lineIndices returns the cell indices of line i ordered from the target edge
// of dir inward.
func (b *Board) lineIndices(dir Direction, i int) []int {
	idx := make([]int, b.size)
	for k := range idx {
		pos := k
		if dir.towardHigh() {
			pos = b.size - 1 - k
		}
		if dir.vertical() {
			idx[k] = pos*b.size + i
		} else {
			idx[k] = i*b.size + pos
		}
	}
	return idx
}

// CanMove reports whether moving in dir would change the board. The move is
// simulated on a copy.
func (b *Board) CanMove(dir Direction) bool {
	c := b.Clone()
	c.state = InProgress
	return c.Move(dir)
}

// HasMove reports whether any direction can change the board: some cell is
// empty or two neighbours in a row or column are equal.
func (b *Board) HasMove() bool {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			v := b.At(r, c)
			if v.IsEmpty() {
				return true
			}
			if c+1 < b.size && b.At(r, c+1) == v {
				return true
			}
			if r+1 < b.size && b.At(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// IsTerminal updates and reports the game state. A board holding WinValue is
// a win, checked first; a board no direction can change is a loss.
func (b *Board) IsTerminal() bool {
	if b.state.Terminal() {
		return true
	}
	for _, c := range b.cells {
		if c == WinValue {
			b.state = Win
			return true
		}
	}
	if !b.HasMove() {
		b.state = Lose
		return true
	}
	return false
}

// String prints the grid one row per line.
func (b *Board) String() string {
	width := len(b.MaxTile().String())
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		sb.WriteByte('[')
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%*s", width, b.At(r, c))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
