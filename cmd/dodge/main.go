// dodge is an arena dodge game: steer the green square past red blocks to
// the yellow goal. Every cleared level adds one more enemy.
//
// Usage:
//
//	dodge play               - Play in the terminal
//	dodge window             - Play in a desktop window
//	dodge serve              - Start SSH server for remote play
//	dodge scores             - Show run history and the high score
//	dodge simulate           - Generate levels headlessly and report placement quality
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.dodge/dodge.db)
//	--config <path>       - Load a custom arena config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//	--sound               - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arena/internal/audio"
	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge Arena - reach the goal, avoid the blocks",
	Long: `Dodge Arena is a small arcade game. Move the green square from the
safe zone to the yellow goal without touching a red block. Each level adds
one more block, and some of them move.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View run history
  simulate  - Check level generation over many seeds

Examples:
  dodge play
  dodge play --difficulty hard --sound
  dodge window --scale 2
  dodge serve --ssh :2222
  dodge scores --reset`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the game database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagSound, "sound", false, "Play sound cues")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig loads the arena config and applies the difficulty preset.
func loadConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, preset, nil
}

// newLogger builds the root logger. Full-screen modes pass quiet so that
// nothing is written to the terminal unless --log-file is set.
// The returned function closes the log file.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the database. Play continues without one: the high score
// then lives in memory and runs are not recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openCues starts the sound cues when --sound is set. The handler is nil
// when sound is off or the audio device is unavailable.
func openCues(logger *log.Logger) (game.EventHandler, func()) {
	if !flagSound {
		return nil, func() {}
	}
	cues := audio.NewCues(flagVolume, logger)
	if err := cues.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return cues, cues.Close
}

// newHighScores tracks the high score in the database.
func newHighScores(store *storage.Store, cfg config.Config, logger *log.Logger) *game.HighScores {
	return game.NewHighScores(store, cfg.Storage.HighScoreKey, logger)
}
