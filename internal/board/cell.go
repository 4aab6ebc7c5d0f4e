// Package board implements the 2048 board: a square grid of tiles that slide
// and merge toward an edge on each move, with random tile spawning and
// win/lose detection.
package board

import "strconv"

// Cell is the value held at one grid position. The zero value is an empty
// cell; otherwise it is a positive power of two.
type Cell int

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// WinValue is the tile value that ends the game in a win.
const WinValue Cell = 2048

// IsEmpty returns true if the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Valid returns true if the cell is empty or holds a positive power of two.
func (c Cell) Valid() bool {
	if c == Empty {
		return true
	}
	return c > 1 && c&(c-1) == 0
}

// String returns the tile value, or a single space for an empty cell.
func (c Cell) String() string {
	if c.IsEmpty() {
		return " "
	}
	return strconv.Itoa(int(c))
}
