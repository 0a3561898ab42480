package core

// State is a complete puzzle position. Moves never modify a State in place;
// they return a fresh copy, so callers may keep old states for history.
type State struct {
	Width, Height int
	Wrapping      bool
	Completed     bool   // Set once every tile has been connected
	Tiles         []Tile // Row-major, index y*Width + x
	Barriers      []Dir  // Row-major; a bit blocks that edge of the cell
}

// newState allocates an empty board.
func newState(p Params) *State {
	n := p.Width * p.Height
	return &State{
		Width:    p.Width,
		Height:   p.Height,
		Wrapping: p.Wrapping,
		Tiles:    make([]Tile, n),
		Barriers: make([]Dir, n),
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Tiles = make([]Tile, len(s.Tiles))
	copy(c.Tiles, s.Tiles)
	c.Barriers = make([]Dir, len(s.Barriers))
	copy(c.Barriers, s.Barriers)
	return &c
}

// Params returns the board shape. BarrierProbability is not stored and
// reads as zero.
func (s *State) Params() Params {
	return Params{Width: s.Width, Height: s.Height, Wrapping: s.Wrapping}
}

func (s *State) index(x, y int) int {
	return y*s.Width + x
}

// InBounds checks if (x, y) lies on the board.
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Tile returns the tile at (x, y).
func (s *State) Tile(x, y int) Tile {
	return s.Tiles[s.index(x, y)]
}

// Barrier returns the barrier edges of cell (x, y).
func (s *State) Barrier(x, y int) Dir {
	return s.Barriers[s.index(x, y)]
}

// Center returns the source cell that the connectivity flood starts from.
func (s *State) Center() (x, y int) {
	return s.Width / 2, s.Height / 2
}

// Neighbor returns the cell one step from (x, y) in direction d.
// Coordinates always wrap modulo the board size; on a bounded board the
// outer barriers keep anything from crossing the edge.
func (s *State) Neighbor(x, y int, d Dir) (nx, ny int) {
	dx, dy := d.Delta()
	return (x + s.Width + dx) % s.Width, (y + s.Height + dy) % s.Height
}

// leavesBoard reports whether stepping from (x, y) through d would cross
// the outer edge.
func (s *State) leavesBoard(x, y int, d Dir) bool {
	dx, dy := d.Delta()
	return !s.InBounds(x+dx, y+dy)
}

// setBarrier blocks the edge between (x, y) and its neighbour through d,
// on both sides.
func (s *State) setBarrier(x, y int, d Dir) {
	s.Barriers[s.index(x, y)] |= d
	nx, ny := s.Neighbor(x, y, d)
	s.Barriers[s.index(nx, ny)] |= d.Reflect()
}
