package game

import (
	"errors"
	"testing"

	"github.com/ulloaluis/2048/internal/board"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Size != DefaultSize {
		t.Errorf("DefaultConfig().Size = %d, want %d", cfg.Size, DefaultSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	for _, size := range []int{0, -3} {
		err := Config{Size: size}.Validate()
		if !errors.Is(err, board.ErrInvalidSize) {
			t.Errorf("Config{Size: %d}.Validate() = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestConfigNewRandSeeded(t *testing.T) {
	cfg := Config{Size: 4, Seed: 42}
	r1, r2 := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 5; i++ {
		if a, b := r1.Int63(), r2.Int63(); a != b {
			t.Fatalf("draw %d differs: %d != %d", i, a, b)
		}
	}
}
