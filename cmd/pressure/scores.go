package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pressure-zone/internal/platform/tui"
	"github.com/vovakirdan/pressure-zone/internal/storage"
)

var (
	flagPlain bool
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs, best first. Only runs that scored at least
one point are recorded.

In a terminal this opens an interactive table; use --plain for text output.
--clear deletes the run history. The stored best score is kept; use
'pressure prefs reset-best' for that.

Examples:
  pressure scores
  pressure scores --plain
  pressure scores --plain --all
  pressure scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Print every run instead of the top 10 (with --plain)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening preferences database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(cmd.OutOrStdout(), store)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, store.Best(), width, height)
	}

	return printScores(cmd.OutOrStdout(), store)
}

// printScores writes the plain-text run list.
func printScores(w io.Writer, store *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagAll {
		scores, err = store.AllScores(storage.GameID)
	} else {
		scores, err = store.TopScores(storage.GameID, 10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "Runs - Pressure Zone")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'pressure play' to set the first score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", store.Best())
	if top, err := store.HighScore(storage.GameID); err == nil {
		fmt.Fprintf(w, "Top run: %d\n", top)
	}
	if stats, err := store.GetGameStats(storage.GameID); err == nil {
		fmt.Fprintf(w, "Runs: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// clearScores deletes every recorded run.
func clearScores(w io.Writer, store *storage.Store) error {
	if err := store.ClearScores(storage.GameID); err != nil {
		return fmt.Errorf("error clearing scores: %w", err)
	}
	logger.Info("run history cleared")
	fmt.Fprintln(w, "Run history cleared.")
	return nil
}
