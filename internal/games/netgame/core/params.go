package core

import (
	"errors"
	"fmt"
)

// Validation errors returned by Params.Validate.
var (
	ErrBoardTooSmall      = errors.New("board must be at least 3x3")
	ErrBarrierProbability = errors.New("barrier probability must be within [0, 1]")
)

// Params describes the puzzle to generate.
type Params struct {
	Width, Height      int
	Wrapping           bool    // Edges of the board join up (torus)
	BarrierProbability float64 // Fraction of unused edges that get a barrier
}

// DefaultParams returns the classic 13x11 wrapping board.
func DefaultParams() Params {
	return Params{
		Width:              13,
		Height:             11,
		Wrapping:           true,
		BarrierProbability: 0.1,
	}
}

// Validate reports whether the parameters can produce a puzzle.
func (p Params) Validate() error {
	if p.Width <= 2 || p.Height <= 2 {
		return fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, p.Width, p.Height)
	}
	if p.BarrierProbability < 0 || p.BarrierProbability > 1 {
		return fmt.Errorf("%w: got %g", ErrBarrierProbability, p.BarrierProbability)
	}
	return nil
}
