package netgame

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-net/internal/core"
	"github.com/vovakirdan/tui-net/internal/games/netgame/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.state == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderBarriers(dst)
	g.renderOverlays(dst)

	dst.DrawTextCenteredColor(g.screenH-1, g.Controls(), platformcore.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.board.W, hudHeight+g.board.H+1))
}

// renderHUD draws the title, move count, progress and seed.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredColor(0, g.Title(), platformcore.ColorBrightWhite)

	dst.DrawText(g.board.X, 1, fmt.Sprintf("Moves: %d", g.moves))

	connected := fmt.Sprintf("Connected: %d/%d", core.CountActive(g.active), len(g.active))
	x := g.board.Right() - len(connected)
	if x < g.board.X {
		x = g.board.X
	}
	dst.DrawText(x, 1, connected)

	info := fmt.Sprintf("Seed %s  %dx%d", g.seed, g.params.Width, g.params.Height)
	dst.DrawTextCenteredColor(2, info, platformcore.ColorGray)
}

// renderBoard draws every tile with its arms. Arms crossing the gap to a
// neighbour are drawn by the tile they belong to; arms leaving the board
// on the top or left edge are drawn in the margin.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	for y := range g.state.Height {
		for x := range g.state.Width {
			px, py := g.layout.TileOrigin(x, y)
			tile := g.state.Tile(x, y)
			arms := tile.Dirs()
			c := g.tileColor(x, y)

			if arms.Has(core.Left) {
				dst.SetColor(px, py, '─', c)
				if x == 0 {
					dst.SetColor(px-1, py, '─', c)
				}
			}
			if arms.Has(core.Right) {
				dst.SetColor(px+2, py, '─', c)
				dst.SetColor(px+3, py, '─', c)
			}
			if arms.Has(core.Down) {
				dst.SetColor(px+1, py+1, '│', c)
			}
			if arms.Has(core.Up) && y == 0 {
				dst.SetColor(px+1, py-1, '│', c)
			}

			glyphColor := c
			switch {
			case x == g.cursorX && y == g.cursorY:
				glyphColor = platformcore.ColorBrightYellow
			case tile.IsLocked():
				glyphColor = platformcore.ColorGray
			}
			dst.SetColor(px+1, py, arms.Glyph(), glyphColor)
		}
	}
}

// renderBarriers draws walls over the gaps. Both tiles of an edge carry
// the barrier, so each wall is drawn from either side.
func (g *Game) renderBarriers(dst *platformcore.Screen) {
	const c = platformcore.ColorRed
	for y := range g.state.Height {
		for x := range g.state.Width {
			b := g.state.Barrier(x, y)
			if b == 0 {
				continue
			}
			px, py := g.layout.TileOrigin(x, y)
			if b.Has(core.Right) {
				dst.SetColor(px+3, py, '┃', c)
			}
			if b.Has(core.Left) {
				dst.SetColor(px-1, py, '┃', c)
			}
			for i := -1; i < cellWidth; i++ {
				if b.Has(core.Down) {
					dst.SetColor(px+i, py+1, '━', c)
				}
				if b.Has(core.Up) {
					dst.SetColor(px+i, py-1, '━', c)
				}
			}
		}
	}
}

// tileColor returns the arm colour of tile (x, y): green once it is
// connected to the centre.
func (g *Game) tileColor(x, y int) platformcore.Color {
	if g.active[y*g.state.Width+x] {
		return platformcore.ColorBrightGreen
	}
	return platformcore.ColorWhite
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX, centerY := g.board.Center()

	if g.state.Completed {
		moves := fmt.Sprintf("%d moves", g.moves)
		g.drawOverlay(dst, centerX, centerY, "SOLVED!", moves, "Press R for a new puzzle")
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
