package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ulloaluis/2048/internal/board"
	"github.com/ulloaluis/2048/internal/gamedata"
)

func sessionFrom(t *testing.T, size int, values ...board.Cell) *Session {
	t.Helper()
	b, err := board.FromValues(size, values, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("FromValues() error: %v", err)
	}
	return newSession(b, nil)
}

func TestNewSessionPlacesStartingTiles(t *testing.T) {
	s, err := NewSession(context.Background(), Config{Size: 4, Seed: 12345}, gamedata.MustLoadSpawnRegistry(), nil)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	occupied := 0
	for _, v := range s.Values() {
		if v.IsEmpty() {
			continue
		}
		occupied++
		if v != 2 && v != 4 {
			t.Errorf("starting tile = %v, want 2 or 4", v)
		}
	}
	if occupied != startingTiles {
		t.Errorf("occupied = %d, want %d", occupied, startingTiles)
	}
	if s.State() != board.InProgress {
		t.Errorf("State() = %v, want %v", s.State(), board.InProgress)
	}
	if s.Size() != 4 {
		t.Errorf("Size() = %d, want 4", s.Size())
	}
}

func TestNewSessionReproducible(t *testing.T) {
	cfg := Config{Size: 4, Seed: 99}
	s1, _ := NewSession(context.Background(), cfg, nil, nil)
	s2, _ := NewSession(context.Background(), cfg, nil, nil)

	dirs := []board.Direction{board.Left, board.Up, board.Right, board.Down, board.Left}
	for _, d := range dirs {
		s1.Step(context.Background(), d)
		s2.Step(context.Background(), d)
	}

	v1, v2 := s1.Values(), s2.Values()
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("cell %d mismatch after same moves: %v != %v", i, v1[i], v2[i])
		}
	}
}

func TestNewSessionInvalidSize(t *testing.T) {
	_, err := NewSession(context.Background(), Config{Size: 0}, nil, nil)
	if !errors.Is(err, board.ErrInvalidSize) {
		t.Errorf("NewSession(size 0) error = %v, want ErrInvalidSize", err)
	}
}

func TestNewSessionOneByOneLoses(t *testing.T) {
	s, err := NewSession(context.Background(), Config{Size: 1, Seed: 3}, nil, nil)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	if s.State() != board.Lose {
		t.Errorf("1x1 State() = %v, want %v", s.State(), board.Lose)
	}
}

func TestStepMovesThenSpawns(t *testing.T) {
	s := sessionFrom(t, 2,
		2, 2,
		0, 0,
	)

	result := s.Step(context.Background(), board.Left)
	if !result.Moved || !result.Spawned {
		t.Errorf("Step() = %+v, want moved and spawned", result)
	}
	if result.State != board.InProgress {
		t.Errorf("Step().State = %v, want %v", result.State, board.InProgress)
	}

	values := s.Values()
	if values[0] != 4 {
		t.Errorf("merged tile = %v, want 4", values[0])
	}
	occupied := 0
	for _, v := range values {
		if !v.IsEmpty() {
			occupied++
		}
	}
	if occupied != 2 {
		t.Errorf("occupied after step = %d, want 2", occupied)
	}
	if s.Turns() != 1 {
		t.Errorf("Turns() = %d, want 1", s.Turns())
	}
}

func TestStepSpawnsEvenWithoutMovement(t *testing.T) {
	s := sessionFrom(t, 2,
		2, 0,
		0, 0,
	)
	result := s.Step(context.Background(), board.Left)
	if result.Moved {
		t.Error("Step(Left) moved = true, want false")
	}
	if !result.Spawned {
		t.Error("Step(Left) spawned = false, want true")
	}
}

func TestStepDetectsWin(t *testing.T) {
	s := sessionFrom(t, 2,
		1024, 1024,
		0, 0,
	)
	result := s.Step(context.Background(), board.Right)
	if result.State != board.Win {
		t.Fatalf("Step().State = %v, want %v", result.State, board.Win)
	}
	if s.Message() != winMessage {
		t.Errorf("Message() = %q, want %q", s.Message(), winMessage)
	}
}

func TestStepDetectsLoseAndStops(t *testing.T) {
	s := sessionFrom(t, 2,
		2, 4,
		4, 2,
	)
	result := s.Step(context.Background(), board.Left)
	if result.State != board.Lose {
		t.Fatalf("Step().State = %v, want %v", result.State, board.Lose)
	}
	if s.Message() != loseMessage {
		t.Errorf("Message() = %q, want %q", s.Message(), loseMessage)
	}

	before := s.Values()
	again := s.Step(context.Background(), board.Up)
	if again.Moved || again.Spawned || again.State != board.Lose {
		t.Errorf("Step() after game over = %+v, want no-op with Lose", again)
	}
	if s.Turns() != 1 {
		t.Errorf("Turns() = %d after game over, want 1", s.Turns())
	}
	after := s.Values()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("board changed after game over at %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestMessageInProgress(t *testing.T) {
	s := sessionFrom(t, 2, 2, 0, 0, 0)
	if got := s.Message(); got != "Use arrow keys" {
		t.Errorf("Message() = %q, want %q", got, "Use arrow keys")
	}
}
