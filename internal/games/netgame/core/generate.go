package core

import (
	"fmt"
	"math/rand/v2"
)

// Generate builds a new shuffled puzzle from p and seed.
// The same params and seed always produce the same puzzle.
// Generate panics if p fails Validate.
func Generate(p Params, seed string) *State {
	puzzle, _ := GenerateWithSolution(p, seed)
	return puzzle
}

// GenerateWithSolution is Generate that also returns the network before
// shuffling. The solution shares the puzzle's barriers, so rotating every
// puzzle tile to its solution orientation completes the puzzle.
func GenerateWithSolution(p Params, seed string) (puzzle, solution *State) {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("netgame: cannot generate: %v", err))
	}

	s := newState(p)
	if !p.Wrapping {
		s.barrierEdges()
	}

	rng := newRand(seed)
	s.buildNetwork(rng)

	barriers := s.barrierCandidates()
	solution = s.Clone()

	s.shuffle(rng)
	s.placeBarriers(rng, barriers, p.BarrierProbability)
	copy(solution.Barriers, s.Barriers)

	return s, solution
}

// barrierEdges walls off the outside of a bounded board.
func (s *State) barrierEdges() {
	for x := 0; x < s.Width; x++ {
		s.Barriers[s.index(x, 0)] |= Up
		s.Barriers[s.index(x, s.Height-1)] |= Down
	}
	for y := 0; y < s.Height; y++ {
		s.Barriers[s.index(0, y)] |= Left
		s.Barriers[s.index(s.Width-1, y)] |= Right
	}
}

// buildNetwork grows a random spanning tree from the centre cell.
//
// The frontier holds every edge that could legally be added next: it
// leaves a connected cell towards an unconnected one. Each round one
// frontier edge is chosen at random and connected. Edges into the newly
// connected cell are dropped so the network never forms a loop, and a
// cell that reaches three arms loses its last free edge so no cross
// tiles appear.
func (s *State) buildNetwork(rng *rand.Rand) {
	var frontier candidateSet
	cx, cy := s.Center()
	for _, d := range Dirs {
		frontier.Add(Candidate{X: cx, Y: cy, Dir: d})
	}

	for frontier.Len() > 0 {
		c := frontier.RemoveAt(rng.IntN(frontier.Len()))
		from := s.index(c.X, c.Y)
		x2, y2 := s.Neighbor(c.X, c.Y, c.Dir)
		to := s.index(x2, y2)
		back := c.Dir.Reflect()

		if s.Tiles[to] != 0 {
			panic(fmt.Sprintf("netgame: frontier edge %v from (%d,%d) leads into connected cell (%d,%d)",
				c.Dir, c.X, c.Y, x2, y2))
		}
		s.Tiles[from] |= Tile(c.Dir)
		s.Tiles[to] |= Tile(back)

		if arms := s.Tiles[from].Dirs(); arms.Count() == 3 {
			frontier.Remove(Candidate{X: c.X, Y: c.Y, Dir: AllDirs &^ arms})
		}

		for _, d := range Dirs {
			x3, y3 := s.Neighbor(x2, y2, d)
			frontier.Remove(Candidate{X: x3, Y: y3, Dir: d.Reflect()})
		}

		for _, d := range Dirs {
			if d == back {
				continue
			}
			if !s.Wrapping && s.leavesBoard(x2, y2, d) {
				continue
			}
			x3, y3 := s.Neighbor(x2, y2, d)
			if s.Tiles[s.index(x3, y3)] != 0 {
				continue
			}
			frontier.Add(Candidate{X: x2, Y: y2, Dir: d})
		}
	}
}

// barrierCandidates lists every edge the network does not use, naming
// each edge once by its rightward or downward side. Edges on the outside
// of a bounded board already carry a barrier and are left out.
func (s *State) barrierCandidates() *candidateSet {
	var set candidateSet
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			arms := s.Tile(x, y).Dirs()
			if (s.Wrapping || x < s.Width-1) && !arms.Has(Right) {
				set.Add(Candidate{X: x, Y: y, Dir: Right})
			}
			if (s.Wrapping || y < s.Height-1) && !arms.Has(Down) {
				set.Add(Candidate{X: x, Y: y, Dir: Down})
			}
		}
	}
	return &set
}

// shuffle turns tiles a random number of quarter turns, one draw per cell
// in raster order. A bounded board leaves its last row and column as built.
func (s *State) shuffle(rng *rand.Rand) {
	edge := 0
	if !s.Wrapping {
		edge = 1
	}
	for y := 0; y < s.Height-edge; y++ {
		for x := 0; x < s.Width-edge; x++ {
			i := s.index(x, y)
			s.Tiles[i] = s.Tiles[i].Rotate(rng.IntN(4))
		}
	}
}

// placeBarriers draws floor(prob*count) candidates without replacement and
// blocks each on both sides. For a fixed seed, a higher probability only
// ever adds barriers to those of a lower one.
func (s *State) placeBarriers(rng *rand.Rand, set *candidateSet, prob float64) {
	n := int(prob * float64(set.Len()))
	if n < 0 || n > set.Len() {
		panic(fmt.Sprintf("netgame: barrier count %d outside [0, %d]", n, set.Len()))
	}
	for ; n > 0; n-- {
		c := set.RemoveAt(rng.IntN(set.Len()))
		s.setBarrier(c.X, c.Y, c.Dir)
	}
}
