package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/florian-runner/internal/platform/tui"
	"github.com/vovakirdan/florian-runner/internal/runner"
	"github.com/vovakirdan/florian-runner/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
	flagScoresPlayer      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and run statistics.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --player ana
  runner scores --interactive
  runner scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the most recent runs of one player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := gameTitle()

	if flagScoresClear {
		n, err := store.ClearScores(runner.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	if flagScoresInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, runner.GameID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresPlayer != "" {
		showPlayerRuns(store, flagScoresPlayer)
		return
	}

	scores, err := store.TopScores(runner.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-8s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-8s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		runTime := time.Duration(entry.ElapsedMs) * time.Millisecond
		fmt.Printf("  %-4d  %-8d  %-16s  %-8s  %s\n",
			i+1, entry.Score, entry.Player, runTime.Round(100*time.Millisecond), dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(runner.GameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.Stats(runner.GameID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1f  Total play: %s\n",
			stats.RunsCount, stats.AvgScore,
			(time.Duration(stats.TotalPlayMs) * time.Millisecond).Round(time.Second))
	}
}

func showPlayerRuns(store *storage.Store, player string) {
	runs, err := store.PlayerRuns(runner.GameID, player, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", player)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded for this player.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %s\n", "Score", "Time", "Date")
	fmt.Printf("  %-8s  %-8s  %s\n", "-----", "----", "----")
	for _, r := range runs {
		runTime := time.Duration(r.ElapsedMs) * time.Millisecond
		fmt.Printf("  %-8d  %-8s  %s\n", r.Score, runTime.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
