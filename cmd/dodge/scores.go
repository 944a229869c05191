package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the high score",
	Long: `Display the best runs, most levels cleared first.

Examples:
  dodge scores
  dodge scores --recent --limit 20
  dodge scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the run history and the high score")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := resetScores(store, cfg.Storage.HighScoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history and high score deleted.")
		return
	}

	out, err := renderScores(store, cfg.Storage.HighScoreKey, flagScoresLimit, flagScoresRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func resetScores(store *storage.Store, key string) error {
	if err := store.ClearRuns(); err != nil {
		return err
	}
	return store.Delete(key)
}

// renderScores formats the run table and the summary below it.
func renderScores(store *storage.Store, key string, limit int, recent bool) (string, error) {
	title := "Best Runs"
	runs, err := store.TopRuns(limit)
	if recent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		return "", err
	}
	stats, err := store.Stats()
	if err != nil {
		return "", err
	}
	best := game.NewHighScores(store, key, nil).Load()

	out := titleStyle.Render("Dodge Arena - "+title) + "\n\n"
	if len(runs) == 0 {
		out += "No runs recorded yet.\n\n"
		out += "Play 'dodge play' to set the first high score!\n"
		return out, nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.LevelsCleared),
			strconv.Itoa(r.LevelReached),
			r.Difficulty,
			r.Duration.Round(time.Second).String(),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Rank", "Cleared", "Reached", "Mode", "Time", "Seed", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 && runs[row].LevelsCleared == best:
				return bestStyle
			default:
				return cellStyle
			}
		})

	out += t.String() + "\n\n"
	out += fmt.Sprintf("High score: %d levels cleared\n", best)
	out += dimStyle.Render(fmt.Sprintf("%d runs, %d levels cleared in total, %.1f on average, last played %s",
		stats.Runs, stats.TotalCleared, stats.AvgCleared, stats.LastPlayed.Format("2006-01-02 15:04"))) + "\n"
	return out, nil
}
