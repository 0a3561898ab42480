package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-net/internal/platform/tui"
	"github.com/vovakirdan/tui-net/internal/registry"
	"github.com/vovakirdan/tui-net/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best solves for a game",
	Long: `Display the 10 best solves for the specified game.
Fewer moves rank first; ties go to the faster solve.

Examples:
  tuinet scores net
  tuinet scores net_wrap
  tuinet scores net --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded solves for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tuinet list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSolves(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solves: %v\n", err)
			return
		}
		fmt.Printf("Cleared solves for %s.\n", title)
		return
	}

	solves, err := store.BestSolves(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tuinet play %s' to record the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-11s  %s\n", "Rank", "Moves", "Time", "Size", "Seed", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-11s  %s\n", "----", "-----", "----", "----", "----", "----")
	for i, s := range solves {
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-4d  %-5d  %-6s  %-6s  %-11s  %s\n",
			i+1, s.Moves, tui.FormatElapsed(s.Elapsed), size, s.Seed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Solved: %d  Average: %.1f moves\n", stats.Solved, stats.AvgMoves)
	}
}
