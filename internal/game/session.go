package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ulloaluis/2048/internal/board"
	"github.com/ulloaluis/2048/internal/telemetry"
)

const (
	// Number of tiles placed before the first move.
	startingTiles = 2

	winMessage  = "Congrats, you win!"
	loseMessage = "Game over, you lose!"
)

// StepResult describes what one turn did.
type StepResult struct {
	Direction board.Direction
	Moved     bool // At least one tile slid or merged
	Spawned   bool // A new tile was placed
	State     board.State
}

// Session runs the turn sequence on a single board: move, spawn, then check
// for a terminal state.
type Session struct {
	board  *board.Board
	log    *zap.SugaredLogger
	tracer trace.Tracer
	turns  int
}

// NewSession creates a board from cfg and places the starting tiles.
// A nil spawner uses the standard 2/4 distribution.
func NewSession(ctx context.Context, cfg Config, spawner board.Spawner, log *zap.SugaredLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := board.NewWithSpawner(cfg.Size, cfg.NewRand(), spawner)
	if err != nil {
		return nil, err
	}

	s := newSession(b, log)

	_, span := s.tracer.Start(ctx, "game.init")
	defer span.End()

	for i := 0; i < startingTiles; i++ {
		b.SpawnRandomTile()
	}
	b.IsTerminal()

	span.SetAttributes(
		attribute.Int("board.size", cfg.Size),
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("board.occupied", b.Occupied()),
	)
	s.log.Infow("new game", "size", cfg.Size, "seed", cfg.Seed)
	return s, nil
}

// newSession wraps an existing board.
func newSession(b *board.Board, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{
		board:  b,
		log:    log,
		tracer: telemetry.Tracer("game"),
	}
}

// Step plays one turn in the given direction. A spawn follows every move,
// even one that changed nothing. Once the game is over, Step changes nothing
// and reports the final state.
func (s *Session) Step(ctx context.Context, dir board.Direction) StepResult {
	result := StepResult{Direction: dir, State: s.board.State()}
	if result.State.Terminal() {
		return result
	}

	ctx, span := s.tracer.Start(ctx, "game.turn")
	defer span.End()

	_, moveSpan := s.tracer.Start(ctx, "board.move")
	result.Moved = s.board.Move(dir)
	moveSpan.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.Bool("moved", result.Moved),
	)
	moveSpan.End()

	_, spawnSpan := s.tracer.Start(ctx, "board.spawn")
	result.Spawned = s.board.SpawnRandomTile()
	spawnSpan.SetAttributes(attribute.Bool("spawned", result.Spawned))
	spawnSpan.End()

	_, terminalSpan := s.tracer.Start(ctx, "board.terminal")
	s.board.IsTerminal()
	result.State = s.board.State()
	terminalSpan.SetAttributes(attribute.String("state", result.State.String()))
	terminalSpan.End()

	s.turns++
	span.SetAttributes(
		attribute.Int("turn", s.turns),
		attribute.Int("board.max_tile", int(s.board.MaxTile())),
		attribute.Int("board.occupied", s.board.Occupied()),
	)

	s.log.Debugw("turn",
		"turn", s.turns,
		"direction", dir.String(),
		"moved", result.Moved,
		"spawned", result.Spawned,
		"state", result.State.String(),
	)
	if result.State.Terminal() {
		s.log.Infow("game over",
			"state", result.State.String(),
			"turns", s.turns,
			"max_tile", int(s.board.MaxTile()),
		)
	}
	return result
}

// Values returns the board layout for rendering.
func (s *Session) Values() []board.Cell {
	return s.board.RenderValues()
}

// Size returns the board's side length.
func (s *Session) Size() int {
	return s.board.Size()
}

// State returns the current game state.
func (s *Session) State() board.State {
	return s.board.State()
}

// Turns returns the number of turns played.
func (s *Session) Turns() int {
	return s.turns
}

// Message returns the status line shown under the board.
func (s *Session) Message() string {
	switch s.board.State() {
	case board.Win:
		return winMessage
	case board.Lose:
		return loseMessage
	default:
		return "Use arrow keys"
	}
}
