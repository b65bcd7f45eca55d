package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-arcade/internal/registry"
	"github.com/vovakirdan/sky-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and play statistics for the specified game.

Examples:
  skyarcade scores walls
  skyarcade scores dodger --limit 25
  skyarcade scores dodger --limit 0
  skyarcade scores skyjumper --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 shows all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyarcade list' to see available games", gameID)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	scores, err := loadScores(store, gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyarcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Score", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-12s  %s\n",
			i+1, entry.Score, formatRunTime(entry), player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	fmt.Printf("Longest run: %s   Total time played: %s\n",
		stats.LongestRun.Round(100*time.Millisecond), stats.TotalTime.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// loadScores returns the best limit runs, or every run when limit is 0 or
// less.
func loadScores(store *storage.Store, gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}

func formatRunTime(e storage.ScoreEntry) string {
	if e.Duration <= 0 {
		return "-"
	}
	return e.Duration.Round(100 * time.Millisecond).String()
}
