package netgame

import "github.com/vovakirdan/tui-net/internal/games/netgame/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      string
	Params    core.Params
	Board     string // One glyph per tile, see core.RenderASCII
	Locked    int    // Number of locked tiles
	Connected int    // Tiles connected to the centre
	Moves     int
	CursorX   int
	CursorY   int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Completed:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	locked := 0
	for _, t := range g.state.Tiles {
		if t.IsLocked() {
			locked++
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Params:    g.params,
		Board:     core.RenderASCII(g.state),
		Locked:    locked,
		Connected: core.CountActive(g.active),
		Moves:     g.moves,
		CursorX:   g.cursorX,
		CursorY:   g.cursorY,
		State:     state,
	}
}
