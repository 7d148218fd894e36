package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified variant. Without a variant,
opens the interactive scoreboard when run in a terminal, or prints a
summary of every variant that has been played.

Examples:
  t2048 scores
  t2048 scores --plain
  t2048 scores 2048
  t2048 scores 2048_big --limit 20
  t2048 scores 2048_mini --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the summary instead of opening the scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a variant")
		}
		if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
			cfg := runtimeConfig()
			_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			return err
		}
		return printAllStats(out, store)
	}

	gameID := args[0]
	if err := requireVariant(gameID); err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s\n", gameID)
		return nil
	}

	return printScores(out, store, gameID, flagScoresLimit)
}

func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Avg: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printAllStats(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-14s  %-6s  %-8s  %-8s  %s\n", "Variant", "Games", "Best", "Avg", "Last played")
	fmt.Fprintf(out, "  %-14s  %-6s  %-8s  %-8s  %s\n", "-------", "-----", "----", "---", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-14s  %-6d  %-8d  %-8.0f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
