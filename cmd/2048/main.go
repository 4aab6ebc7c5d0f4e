// Command 2048 plays the sliding-tile puzzle in the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/ulloaluis/2048/internal/game"
	"github.com/ulloaluis/2048/internal/logging"
	"github.com/ulloaluis/2048/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. Every flag can also be set from the environment.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "2048",
		Usage: "slide and merge tiles until one reaches 2048",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "board side length",
				Value:   game.DefaultSize,
				Sources: cli.EnvVars("TWENTYFORTYEIGHT_SIZE"),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "random seed for a reproducible game (0 picks one)",
				Sources: cli.EnvVars("TWENTYFORTYEIGHT_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log file path, empty disables logging",
				Value:   "2048.log",
				Sources: cli.EnvVars("TWENTYFORTYEIGHT_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log every turn",
				Sources: cli.EnvVars("TWENTYFORTYEIGHT_DEBUG"),
			},
		},
		Action: run,
	}
}

// run validates the configuration before the terminal is taken over, then
// plays one game and prints the outcome.
func run(ctx context.Context, cmd *cli.Command) error {
	cfg := game.Config{
		Size: int(cmd.Int("size")),
		Seed: cmd.Int("seed"),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	logger, err := logging.New(logging.Options{
		FilePath: cmd.String("log-file"),
		Debug:    cmd.Bool("debug"),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logging.Sync(logger)

	telemetry.ConfigureHoneycombEnv()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		// Game still works without observability
		logger.Warnw("telemetry setup failed", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warnw("telemetry shutdown failed", "error", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	fmt.Println(g.Result())
	return nil
}
