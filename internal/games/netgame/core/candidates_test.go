package core

import "testing"

func TestCandidateSetOrder(t *testing.T) {
	var s candidateSet
	s.Add(Candidate{X: 2, Y: 0, Dir: Right})
	s.Add(Candidate{X: 0, Y: 1, Dir: Down})
	s.Add(Candidate{X: 0, Y: 1, Dir: Right})
	s.Add(Candidate{X: 0, Y: 0, Dir: Left})
	s.Add(Candidate{X: 0, Y: 1, Dir: Right}) // duplicate

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", s.Len())
	}

	expected := []Candidate{
		{X: 0, Y: 0, Dir: Left},
		{X: 0, Y: 1, Dir: Right},
		{X: 0, Y: 1, Dir: Down},
		{X: 2, Y: 0, Dir: Right},
	}
	for i, c := range expected {
		if s.items[i] != c {
			t.Errorf("item %d = %+v, expected %+v", i, s.items[i], c)
		}
	}
}

func TestCandidateSetRemove(t *testing.T) {
	var s candidateSet
	for x := range 3 {
		s.Add(Candidate{X: x, Y: 0, Dir: Up})
	}

	s.Remove(Candidate{X: 1, Y: 0, Dir: Up})
	if s.Has(Candidate{X: 1, Y: 0, Dir: Up}) {
		t.Error("removed candidate still present")
	}
	s.Remove(Candidate{X: 9, Y: 9, Dir: Up}) // absent, no-op
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	got := s.RemoveAt(1)
	if got != (Candidate{X: 2, Y: 0, Dir: Up}) {
		t.Errorf("RemoveAt(1) = %+v, expected (2,0,Up)", got)
	}
	if s.Len() != 1 || !s.Has(Candidate{X: 0, Y: 0, Dir: Up}) {
		t.Errorf("unexpected remaining set %+v", s.items)
	}
}
