package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-net/internal/config"
	"github.com/vovakirdan/tui-net/internal/core"
	"github.com/vovakirdan/tui-net/internal/games/netgame"
	"github.com/vovakirdan/tui-net/internal/platform/tui"
	"github.com/vovakirdan/tui-net/internal/registry"
	"github.com/vovakirdan/tui-net/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPreset     int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a puzzle",
	Long: `Start solving a puzzle of the specified variant.

Without --preset a size selector is shown first.

Controls:
  Arrows/HJKL  - Move cursor
  Z / ,        - Rotate anticlockwise
  X / .        - Rotate clockwise
  Space        - Lock/unlock tile
  Mouse        - Left: anticlockwise, Right: clockwise, Middle: lock
  P            - Pause
  R            - New puzzle
  B/Esc        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - No barriers
  normal - 10% of unused edges get a barrier
  hard   - 25% of unused edges get a barrier
  fixed  - Barrier probability from the config file

Examples:
  tuinet play net
  tuinet play net_wrap --preset 5
  tuinet play net --difficulty hard
  tuinet play net --seed 1234 --preset 2
  tuinet play net --config ./my-net.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagPreset, "preset", -1, "Board size preset (0 = config size, see 'tuinet list')")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyPuzzleFlags passes the config path and difficulty to the game package.
func applyPuzzleFlags() error {
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if _, ok := config.BarrierProbabilityForPreset(preset); !ok && !config.IsFixedPreset(preset) {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		netgame.SetDifficultyPreset(preset)
	}
	netgame.SetConfigPath(flagConfig)
	return nil
}

// openStore opens the solves database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open solves database", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tuinet list' to see available games.")
		os.Exit(1)
	}
	if flagPreset > netgame.PresetCount() {
		fmt.Fprintf(os.Stderr, "Error: preset must be between 0 and %d\n", netgame.PresetCount())
		os.Exit(1)
	}
	if err := applyPuzzleFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	if flagPreset >= 0 {
		netgame.SetPreset(flagPreset)
	} else {
		// Show the size selector
		selection, selErr := tui.RunNetSizeSelector(game.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		netgame.SetPreset(selection.Preset)
		if flagDifficulty == "" {
			netgame.SetDifficultyPreset(selection.Difficulty)
		}
	}

	store := openStore()
	log.Debug("starting puzzle", "game", gameID, "seed", cfg.Seed, "preset", netgame.GetSelectedPreset())

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
