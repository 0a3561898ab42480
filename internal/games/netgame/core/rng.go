package core

import (
	"crypto/sha256"
	"math/rand/v2"
	"strconv"
)

// newRand returns a generator whose whole output stream is a function of
// seed. Equal seeds give equal puzzles on every platform.
func newRand(seed string) *rand.Rand {
	return rand.New(rand.NewChaCha8(sha256.Sum256([]byte(seed))))
}

// NewSeed returns a fresh seed string: a random non-negative integer in
// decimal, the canonical form printed for players to share.
func NewSeed() string {
	return strconv.FormatInt(rand.Int64N(1<<31), 10)
}
