package core

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ValidationError contains details about a network that breaks the rules
// of a generated solution.
type ValidationError struct {
	Code    string
	X, Y    int
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] (%d,%d): %s", e.Code, e.X, e.Y, e.Message)
}

// Validate checks that s holds a well-formed solved network:
//   - every arm is matched by the neighbour's opposite arm
//   - barriers are recorded on both sides of an edge
//   - no tile has all four arms
//   - no arm leaves a bounded board
//   - the arms form a single spanning tree
//
// A shuffled puzzle normally fails the arm check. Pass the solution
// returned by GenerateWithSolution instead.
func Validate(s *State) error {
	if err := validateEdges(s); err != nil {
		return err
	}
	return validateTree(s)
}

func validateEdges(s *State) error {
	for i, tile := range s.Tiles {
		if tile.Dirs() == AllDirs {
			return ValidationError{Code: "CROSS", X: i % s.Width, Y: i / s.Width, Message: "tile has four arms"}
		}
	}

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			arms := s.Tile(x, y).Dirs()
			for _, d := range Dirs {
				offBoard := !s.Wrapping && s.leavesBoard(x, y, d)
				if offBoard && arms.Has(d) {
					return ValidationError{Code: "OFF_BOARD", X: x, Y: y,
						Message: fmt.Sprintf("arm %v leaves the board", d)}
				}
				if offBoard && !s.Barrier(x, y).Has(d) {
					return ValidationError{Code: "OPEN_EDGE", X: x, Y: y,
						Message: fmt.Sprintf("outer edge %v has no barrier", d)}
				}
				nx, ny := s.Neighbor(x, y, d)
				if arms.Has(d) != s.Tile(nx, ny).Dirs().Has(d.Reflect()) {
					return ValidationError{Code: "ASYMMETRIC_ARM", X: x, Y: y,
						Message: fmt.Sprintf("arm %v does not match neighbour (%d,%d)", d, nx, ny)}
				}
				if s.Barrier(x, y).Has(d) != s.Barrier(nx, ny).Has(d.Reflect()) {
					return ValidationError{Code: "ASYMMETRIC_BARRIER", X: x, Y: y,
						Message: fmt.Sprintf("barrier %v does not match neighbour (%d,%d)", d, nx, ny)}
				}
			}
		}
	}
	return nil
}

// validateTree walks the arms from the centre, ignoring barriers, and
// checks that every cell is reached and the edge count is cells-1.
func validateTree(s *State) error {
	type cell struct{ x, y int }

	cx, cy := s.Center()
	visited := mapset.New[cell]()
	visited.Put(cell{cx, cy})
	queue := []cell{{cx, cy}}
	arms := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		tile := s.Tile(c.x, c.y).Dirs()
		arms += tile.Count()
		for _, d := range Dirs {
			if !tile.Has(d) {
				continue
			}
			nx, ny := s.Neighbor(c.x, c.y, d)
			n := cell{nx, ny}
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	total := s.Width * s.Height
	if visited.Size() != total {
		return ValidationError{Code: "DISCONNECTED", X: cx, Y: cy,
			Message: fmt.Sprintf("reached %d of %d cells", visited.Size(), total)}
	}
	if edges := arms / 2; edges != total-1 {
		return ValidationError{Code: "LOOP", X: cx, Y: cy,
			Message: fmt.Sprintf("network has %d edges, a tree needs %d", edges, total-1)}
	}
	return nil
}
