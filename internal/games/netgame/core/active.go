package core

// ComputeActive floods outward from the centre cell and reports which
// tiles are connected to it. An edge carries the flow only when both tiles
// have an arm across it and no barrier blocks it.
func ComputeActive(s *State) []bool {
	active := make([]bool, len(s.Tiles))

	cx, cy := s.Center()
	active[s.index(cx, cy)] = true
	queue := []int{s.index(cx, cy)}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%s.Width, i/s.Width

		arms := s.Tiles[i].Dirs()
		for _, d := range Dirs {
			if !arms.Has(d) || s.Barriers[i].Has(d) {
				continue
			}
			nx, ny := s.Neighbor(x, y, d)
			j := s.index(nx, ny)
			if active[j] || !s.Tiles[j].Dirs().Has(d.Reflect()) {
				continue
			}
			active[j] = true
			queue = append(queue, j)
		}
	}

	return active
}

// CountActive returns how many cells are marked active.
func CountActive(active []bool) int {
	n := 0
	for _, a := range active {
		if a {
			n++
		}
	}
	return n
}

// AllActive reports whether every cell is connected to the centre.
func AllActive(active []bool) bool {
	return CountActive(active) == len(active)
}

// IsComplete reports whether the puzzle is currently solved.
func IsComplete(s *State) bool {
	return AllActive(ComputeActive(s))
}
