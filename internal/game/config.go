package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ulloaluis/2048/internal/board"
)

// DefaultSize is the classic 4×4 board.
const DefaultSize = 4

// Config holds game configuration options.
type Config struct {
	// Size is the board's side length.
	Size int
	// Seed for random number generation. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns a 4×4 game with a random seed.
func DefaultConfig() Config {
	return Config{Size: DefaultSize}
}

// Validate rejects configurations the board cannot be built from.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, board.ErrInvalidSize)
	}
	return nil
}

// NewRand returns the random source for a game, seeded from Seed or the clock.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
