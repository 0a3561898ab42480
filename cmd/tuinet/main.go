// tuinet is a terminal version of the Net pipe-rotation puzzle: rotate the
// tiles until every one is connected to the centre.
//
// Usage:
//
//	tuinet list              - List puzzle variants
//	tuinet play <game>       - Play a puzzle
//	tuinet menu              - Start menu to pick a variant interactively
//	tuinet gen               - Print a generated puzzle
//	tuinet serve             - Start SSH server for remote play
//	tuinet scores <game>     - Show the best solves for a variant
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Puzzle seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.tuinet/solves.db)
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-net/internal/games/netgame"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuinet",
	Short: "Net - connect every pipe in your terminal",
	Long: `Net is a pipe-rotation puzzle. Every tile holds a piece of a network;
rotate the tiles until they all join up with the centre tile, with no
loose ends.

Available commands:
  list     - Show all puzzle variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  gen      - Print a generated puzzle without playing it
  serve    - Start SSH server for remote play
  scores   - View best solves

Examples:
  tuinet list
  tuinet play net
  tuinet play net_wrap --seed 1234
  tuinet gen --width 9 --height 9 --check
  tuinet serve --ssh :2222
  tuinet scores net`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Puzzle seed (empty = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tuinet/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
