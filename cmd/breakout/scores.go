package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	flagPlayer string
	flagReset  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best score of every player, highest first.

Local games are recorded under the player "local"; SSH games under the
SSH user name.

Examples:
  breakout scores
  breakout scores --limit 5
  breakout scores --reset --player local`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", storage.DefaultPlayer, "Player whose score --reset clears")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the player's high score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of players to list")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetHighScore(flagPlayer); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error resetting score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("High score for %q reset.\n", flagPlayer)
		return
	}

	// Get top scores
	scores, err := store.HighScores(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Breakout")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}
}
