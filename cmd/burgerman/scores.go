package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/burgerman/internal/platform/tui"
	"github.com/vovakirdan/burgerman/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs, or the latest runs of one player.

Examples:
  burgerman scores
  burgerman scores --player alice
  burgerman scores --interactive
  burgerman scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagPlayer, width, height)
	}

	var runs []storage.Run
	if flagPlayer != "" {
		fmt.Printf("Latest runs - %s\n", flagPlayer)
		runs, err = store.PlayerRuns(flagPlayer, flagScoresLimit)
	} else {
		fmt.Println("High Scores - Burger Man")
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'burgerman play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Round", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-6s  %s\n",
			i+1, player, r.Score, r.Round, storage.OutcomeLabel(r.Outcome), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Victories: %d  Best: %d (round %d)  Average: %.0f\n",
			stats.Runs, stats.Victories, stats.HighScore, stats.BestRound, stats.AvgScore)
	}
	return nil
}
