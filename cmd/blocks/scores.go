package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with their lines, level and player.

Examples:
  blocks scores
  blocks scores --limit 25
  blocks scores --interactive
  blocks scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) {
	settings := loadSettings(cmd)

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Error("cannot open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(blocks.ID); err != nil {
			logger.Error("cannot clear scores", "error", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
	case flagInteractive:
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, blocks.ID, "Blocks", width, height); err != nil {
			logger.Error("error running scoreboard", "error", err)
			os.Exit(1)
		}
	default:
		if err := printScores(store, flagScoresLimit); err != nil {
			logger.Error("cannot retrieve scores", "error", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, limit int) error {
	runs, err := store.TopRuns(blocks.ID, limit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Blocks")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blocks play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Lines", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4d  %-10s  %-5s  %-5s  %-12s  %s\n", i+1, row[1], row[2], row[3], row[4],
			runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(blocks.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Total lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
