// Package netgame provides the Net pipe-rotation puzzle for the terminal.
// It adapts the puzzle core to the registry.Game interface: cursor and
// mouse input, HUD and board rendering.
package netgame

import (
	"github.com/vovakirdan/tui-net/internal/config"
	platformcore "github.com/vovakirdan/tui-net/internal/core"
	"github.com/vovakirdan/tui-net/internal/games/netgame/core"
	"github.com/vovakirdan/tui-net/internal/registry"
)

const (
	cellWidth  = 4 // Tile glyph with its two arms, plus the gap column
	cellHeight = 2 // Tile row plus the gap row
	hudHeight  = 3
)

// Game implements the Net puzzle.
type Game struct {
	wrapping bool

	params core.Params
	seed   string
	state  *core.State
	active []bool
	preset int // Size preset in use, 0 for the configured size

	cursorX, cursorY int

	tick  uint64
	moves int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused   bool
	tooSmall bool

	// Terminal geometry of the board, recomputed on resize
	layout core.Layout
	board  platformcore.Rect
}

// Package-level variables for config
var (
	configPath     string
	difficulty     = config.DifficultyFixed
	selectedPreset int
)

// SetConfigPath sets a custom YAML config file. Empty means the default search.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects how many barriers new puzzles get.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficulty = preset
}

// SetPreset selects a size preset (1-indexed) for the next puzzle.
// 0 means the size from the config file.
func SetPreset(level int) {
	selectedPreset = level
}

// GetSelectedPreset returns the size preset waiting for the next Reset.
func GetSelectedPreset() int {
	return selectedPreset
}

// New creates a Net game on a bounded board.
func New() *Game {
	return &Game{}
}

// NewWrapping creates a Net game whose board edges join up.
func NewWrapping() *Game {
	return &Game{wrapping: true}
}

func init() {
	registry.Register("net", func() registry.Game {
		return New()
	})
	registry.Register("net_wrap", func() registry.Game {
		return NewWrapping()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.wrapping {
		return "net_wrap"
	}
	return "net"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.wrapping {
		return "Net (wrapping)"
	}
	return "Net"
}

// Reset generates a new puzzle. An empty seed picks a fresh one.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if selectedPreset > 0 {
		g.preset = selectedPreset
		selectedPreset = 0 // Reset after use
	}

	g.params = g.loadParams()
	g.seed = cfg.Seed
	if g.seed == "" {
		g.seed = core.NewSeed()
	}

	g.state = core.Generate(g.params, g.seed)
	g.active = core.ComputeActive(g.state)
	g.cursorX, g.cursorY = g.state.Center()

	g.tick = 0
	g.moves = 0
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadParams builds the puzzle parameters from the config file, the
// difficulty preset and the size preset. Invalid settings fall back to
// the classic board.
func (g *Game) loadParams() core.Params {
	cfg, err := config.LoadNet(configPath)
	if err != nil {
		cfg = config.DefaultNetConfig()
	}
	config.ApplyNetPreset(&cfg, difficulty)

	p := core.Params{
		Width:              cfg.Board.Width,
		Height:             cfg.Board.Height,
		Wrapping:           g.wrapping,
		BarrierProbability: cfg.Barriers.Probability,
	}
	if preset := GetPreset(g.preset - 1); preset != nil {
		p.Width, p.Height = preset.Width, preset.Height
	}

	if err := p.Validate(); err != nil {
		p = core.DefaultParams()
		p.Wrapping = g.wrapping
	}
	return p
}

// Resize lays the board out for a new screen size. The puzzle is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	// One spare column and row on the top-left for the outer edge
	boardW := g.params.Width*cellWidth + 1
	boardH := g.params.Height*cellHeight + 1
	g.board = platformcore.NewRect((w-boardW)/2, hudHeight, boardW, boardH)

	g.layout = core.Layout{
		OffsetX:    g.board.X + 1,
		OffsetY:    g.board.Y + 1,
		TileWidth:  cellWidth,
		TileHeight: cellHeight,
		Border:     1,
	}

	// Board, HUD and the controls line
	g.tooSmall = w < boardW || h < hudHeight+boardH+1
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.state == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.state.Completed {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionRotateCCW):
		g.play(g.cursorX, g.cursorY, core.ButtonPrimary)
	case in.Has(platformcore.ActionRotateCW):
		g.play(g.cursorX, g.cursorY, core.ButtonSecondary)
	case in.Has(platformcore.ActionLock):
		g.play(g.cursorX, g.cursorY, core.ButtonAuxiliary)
	}

	for _, c := range in.Clicks {
		if g.state.Completed {
			break
		}
		g.click(c)
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor moves the cursor one tile. Wrapping boards wrap the cursor too.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	dx, dy := 0, 0
	switch {
	case in.Has(platformcore.ActionUp):
		dy = -1
	case in.Has(platformcore.ActionDown):
		dy = 1
	case in.Has(platformcore.ActionLeft):
		dx = -1
	case in.Has(platformcore.ActionRight):
		dx = 1
	}
	if dx == 0 && dy == 0 {
		return
	}

	w, h := g.state.Width, g.state.Height
	if g.wrapping {
		g.cursorX = (g.cursorX + dx + w) % w
		g.cursorY = (g.cursorY + dy + h) % h
		return
	}
	g.cursorX = platformcore.Clamp(g.cursorX+dx, 0, w-1)
	g.cursorY = platformcore.Clamp(g.cursorY+dy, 0, h-1)
}

// click plays a mouse click. The cursor follows the clicked tile.
func (g *Game) click(c platformcore.Click) {
	if !g.board.Contains(c.X, c.Y) {
		return
	}
	b, ok := buttonFor(c.Button)
	if !ok {
		return
	}
	if tx, ty, hit := g.layout.TileAt(c.X, c.Y, g.state.Width, g.state.Height); hit {
		g.cursorX, g.cursorY = tx, ty
	}
	next, ok := g.layout.ApplyMove(g.state, c.X, c.Y, b)
	g.apply(next, ok, b)
}

// play applies a button to tile (tx, ty).
func (g *Game) play(tx, ty int, b core.Button) {
	next, ok := core.Move(g.state, tx, ty, b)
	g.apply(next, ok, b)
}

// apply installs the result of a move. Locking does not count as a move.
func (g *Game) apply(next *core.State, ok bool, b core.Button) {
	if !ok {
		return
	}
	g.state = next
	if b != core.ButtonAuxiliary {
		g.moves++
	}
	g.active = core.ComputeActive(g.state)
}

// buttonFor maps a mouse button onto a puzzle button.
func buttonFor(mb platformcore.MouseButton) (core.Button, bool) {
	switch mb {
	case platformcore.MouseLeft:
		return core.ButtonPrimary, true
	case platformcore.MouseRight:
		return core.ButtonSecondary, true
	case platformcore.MouseMiddle:
		return core.ButtonAuxiliary, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{}
	}
	// Shape comes from the board itself; the state does not keep the
	// barrier probability it was generated with.
	shape := g.state.Params()
	return platformcore.GameState{
		Moves:     g.moves,
		Ticks:     g.tick,
		Completed: g.state.Completed,
		Paused:    g.paused || g.tooSmall,
		Puzzle: platformcore.PuzzleInfo{
			Seed:               g.seed,
			Width:              shape.Width,
			Height:             shape.Height,
			Wrapping:           shape.Wrapping,
			BarrierProbability: g.params.BarrierProbability,
		},
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Z/X: Rotate | Space: Lock | P: Pause | R: New | Q: Quit"
}
