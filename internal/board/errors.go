package board

import "errors"

var (
	// ErrInvalidSize is returned when a board is created with a non-positive size.
	ErrInvalidSize = errors.New("board size must be positive")
	// ErrLayoutSize is returned when a layout does not hold exactly size² cells.
	ErrLayoutSize = errors.New("layout length does not match board size")
	// ErrInvalidValue is returned when a layout holds a value that is not a power of two.
	ErrInvalidValue = errors.New("tile value must be empty or a power of two")
)
