package core

// Button identifies the pointer button that produced a move.
type Button int

const (
	ButtonPrimary   Button = iota // Rotate anticlockwise
	ButtonSecondary               // Rotate clockwise
	ButtonAuxiliary               // Toggle lock
)

// String returns the string representation of a button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonAuxiliary:
		return "Auxiliary"
	default:
		return "Unknown"
	}
}

// Layout maps pointer coordinates onto tiles. Tiles sit on a regular
// pitch starting at the offset; the last Border units of every tile, on
// both axes, are a gap that belongs to no tile.
type Layout struct {
	OffsetX, OffsetY      int
	TileWidth, TileHeight int
	Border                int
}

// Pixel geometry of the classic board.
const (
	TileSize     = 32
	TileBorder   = 1
	WindowOffset = 16
)

// DefaultLayout is the pixel layout of the classic board.
var DefaultLayout = Layout{
	OffsetX:    WindowOffset,
	OffsetY:    WindowOffset,
	TileWidth:  TileSize,
	TileHeight: TileSize,
	Border:     TileBorder,
}

// TileAt returns the tile under point (px, py) on a w x h board.
// ok is false when the point is outside the board or on a border gap.
func (l Layout) TileAt(px, py, w, h int) (tx, ty int, ok bool) {
	x := px - l.OffsetX
	y := py - l.OffsetY
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	tx, ty = x/l.TileWidth, y/l.TileHeight
	if tx >= w || ty >= h {
		return 0, 0, false
	}
	if x%l.TileWidth >= l.TileWidth-l.Border || y%l.TileHeight >= l.TileHeight-l.Border {
		return 0, 0, false
	}
	return tx, ty, true
}

// TileOrigin returns the top-left point of tile (tx, ty).
func (l Layout) TileOrigin(tx, ty int) (px, py int) {
	return l.OffsetX + tx*l.TileWidth, l.OffsetY + ty*l.TileHeight
}

// ApplyMove hit-tests (px, py) against this layout and plays the move on
// the tile underneath. See Move for the result.
func (l Layout) ApplyMove(s *State, px, py int, b Button) (*State, bool) {
	if !validButton(b) {
		return nil, false
	}
	tx, ty, ok := l.TileAt(px, py, s.Width, s.Height)
	if !ok {
		return nil, false
	}
	return Move(s, tx, ty, b)
}

// ApplyMove plays a pointer move on the classic pixel layout.
func ApplyMove(s *State, px, py int, b Button) (*State, bool) {
	return DefaultLayout.ApplyMove(s, px, py, b)
}

// Move plays button b on tile (tx, ty). The input state is never modified:
// on success a new state is returned with ok true; when nothing would
// change (locked tile, unknown button, off-board tile) it returns nil and
// false.
func Move(s *State, tx, ty int, b Button) (next *State, ok bool) {
	if !validButton(b) || !s.InBounds(tx, ty) {
		return nil, false
	}
	tile := s.Tile(tx, ty)

	if b == ButtonAuxiliary {
		next = s.Clone()
		next.Tiles[next.index(tx, ty)] = tile ^ Locked
		return next, true
	}

	if tile.IsLocked() {
		return nil, false
	}

	next = s.Clone()
	turns := 1
	if b == ButtonSecondary {
		turns = -1
	}
	next.Tiles[next.index(tx, ty)] = tile.Rotate(turns)

	if IsComplete(next) {
		next.Completed = true
	}
	return next, true
}

func validButton(b Button) bool {
	return b == ButtonPrimary || b == ButtonSecondary || b == ButtonAuxiliary
}
