package core

import (
	"strconv"
	"testing"
)

func TestNewRandDeterministic(t *testing.T) {
	a := newRand("42")
	b := newRand("42")
	c := newRand("43")

	same := true
	for range 16 {
		x, y, z := a.IntN(1000), b.IntN(1000), c.IntN(1000)
		if x != y {
			t.Fatalf("equal seeds diverged: %d vs %d", x, y)
		}
		if x != z {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestNewSeedIsDecimal(t *testing.T) {
	for range 10 {
		seed := NewSeed()
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			t.Fatalf("seed %q is not decimal: %v", seed, err)
		}
		if n < 0 {
			t.Errorf("seed %q is negative", seed)
		}
	}
}
