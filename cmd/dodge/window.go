package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arena/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the arena in a desktop window.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  R           - Restart at level 1
  Q           - Quit

Examples:
  dodge window
  dodge window --scale 2 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	cues, closeCues := openCues(logger)
	defer closeCues()

	opts := gui.Options{
		Config:     cfg,
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Scale:      flagScale,
		Difficulty: preset,
		Cues:       cues,
		Logger:     logger,
	}
	if store != nil {
		opts.Store = store
		opts.HighScores = newHighScores(store, cfg, logger)
	}

	runErr := gui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
