package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     string // Puzzle seed; empty means the game picks a fresh one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// PuzzleInfo describes the puzzle a game is currently showing, enough to
// generate it again.
type PuzzleInfo struct {
	Seed               string
	Width, Height      int
	Wrapping           bool
	BarrierProbability float64
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves     int    // Rotations made so far
	Ticks     uint64 // Ticks played, excluding time spent paused
	Completed bool   // Whether the puzzle has been solved
	Paused    bool   // Whether the game is paused
	Puzzle    PuzzleInfo
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
