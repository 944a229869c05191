package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  R           - Restart at level 1
  Tab         - Run history
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a direction stays held for a
moment after each key press. Keyboard auto-repeat keeps it held.

Difficulty options:
  easy   - Fewer moving blocks, slower
  normal - Config values as loaded
  hard   - More moving blocks, faster

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --seed 42 --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	cues, closeCues := openCues(logger)
	defer closeCues()

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: preset,
		Cues:       cues,
		Logger:     logger,
	}
	if store != nil {
		opts.Store = store
		opts.HighScores = newHighScores(store, cfg, logger)
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
