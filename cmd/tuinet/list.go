package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-net/internal/games/netgame"
	"github.com/vovakirdan/tui-net/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle variants",
	Long:  `Shows the puzzle variants and the board size presets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Board sizes (--preset):")
	fmt.Println()
	for _, p := range netgame.Presets {
		fmt.Printf("  %d  %-8s %dx%d\n", p.ID, p.Name, p.Width, p.Height)
	}

	fmt.Println()
	fmt.Println("Run 'tuinet play <id>' to play a game.")
}
