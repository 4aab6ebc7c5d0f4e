// Package game drives a 2048 session from the terminal: it decodes key
// presses, runs turns on the board, and renders the result.
package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/ulloaluis/2048/internal/gamedata"
	"github.com/ulloaluis/2048/internal/ui"
)

// Game holds the terminal and the session being played.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	log      *zap.SugaredLogger
	running  bool
}

// New creates a session from cfg and opens the terminal screen.
func New(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*Game, error) {
	spawns, err := gamedata.LoadSpawnRegistry()
	if err != nil {
		return nil, fmt.Errorf("load spawn table: %w", err)
	}
	styles, err := gamedata.LoadStyleRegistry()
	if err != nil {
		return nil, fmt.Errorf("load tile styles: %w", err)
	}

	session, err := NewSession(ctx, cfg, spawns, log)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		session:  session,
		log:      session.log,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or, after the game
// ends, presses any key.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render draws the board and status line.
func (g *Game) render() {
	msg := g.session.Message()
	if g.session.State().Terminal() {
		msg += " Press any key to exit."
	}
	g.renderer.Render(g.session.Values(), g.session.Size(), msg)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if isQuitKey(ev) || g.session.State().Terminal() {
		g.running = false
		return
	}

	dir, ok := DirectionForKey(ev)
	if !ok {
		return
	}
	g.session.Step(ctx, dir)
}

// Result returns the final status message.
func (g *Game) Result() string {
	return g.session.Message()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
