package core

import (
	"cmp"
	"slices"
)

// Candidate is a (cell, direction) pair: an edge leaving cell (X, Y)
// through Dir.
type Candidate struct {
	X, Y int
	Dir  Dir
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Dir, b.Dir)
}

// candidateSet is an ordered set of candidates keyed by (x, y, dir).
// Elements stay sorted, so the element at a given index depends only on
// the set's contents.
type candidateSet struct {
	items []Candidate
}

func (s *candidateSet) Len() int {
	return len(s.items)
}

// Add inserts c. Adding a present candidate is a no-op.
func (s *candidateSet) Add(c Candidate) {
	i, found := slices.BinarySearchFunc(s.items, c, compareCandidates)
	if found {
		return
	}
	s.items = slices.Insert(s.items, i, c)
}

// Has reports whether c is in the set.
func (s *candidateSet) Has(c Candidate) bool {
	_, found := slices.BinarySearchFunc(s.items, c, compareCandidates)
	return found
}

// Remove deletes c if present.
func (s *candidateSet) Remove(c Candidate) {
	i, found := slices.BinarySearchFunc(s.items, c, compareCandidates)
	if found {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

// RemoveAt deletes and returns the i-th smallest candidate.
func (s *candidateSet) RemoveAt(i int) Candidate {
	c := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return c
}
