// Package core provides the puzzle logic for Net: grid generation, tile
// rotation and connectivity. This package is UI-agnostic and deterministic.
package core

import "math/bits"

// Dir is a set of the four compass directions. A single-direction value
// names one edge of a tile; a multi-bit value describes the arms of a tile.
type Dir uint8

const (
	Right Dir = 0x01
	Up    Dir = 0x02
	Left  Dir = 0x04
	Down  Dir = 0x08

	// AllDirs is the full cross.
	AllDirs = Right | Up | Left | Down
)

// Dirs lists the single directions in anticlockwise order starting from Right.
var Dirs = [4]Dir{Right, Up, Left, Down}

// String returns the string representation of a direction set.
func (d Dir) String() string {
	switch d {
	case 0:
		return "None"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	}
	var out []byte
	for _, one := range Dirs {
		if d.Has(one) {
			if len(out) > 0 {
				out = append(out, '|')
			}
			out = append(out, one.String()...)
		}
	}
	return string(out)
}

// Has reports whether every direction in o is present in d.
func (d Dir) Has(o Dir) bool {
	return d&o == o && o != 0
}

// Count returns how many directions are in the set.
func (d Dir) Count() int {
	return bits.OnesCount8(uint8(d & AllDirs))
}

// mapEach applies a single-direction transform to every member of the set.
func (d Dir) mapEach(f func(Dir) Dir) Dir {
	var out Dir
	for _, one := range Dirs {
		if d&one != 0 {
			out |= f(one)
		}
	}
	return out
}

// Reflect turns every direction around by 180 degrees.
func (d Dir) Reflect() Dir {
	return d.mapEach(func(one Dir) Dir {
		switch one {
		case Right:
			return Left
		case Up:
			return Down
		case Left:
			return Right
		default:
			return Up
		}
	})
}

// RotateCCW turns every direction a quarter turn anticlockwise
// (Right becomes Up).
func (d Dir) RotateCCW() Dir {
	return d.mapEach(func(one Dir) Dir {
		switch one {
		case Right:
			return Up
		case Up:
			return Left
		case Left:
			return Down
		default:
			return Right
		}
	})
}

// RotateCW turns every direction a quarter turn clockwise
// (Up becomes Right).
func (d Dir) RotateCW() Dir {
	return d.mapEach(func(one Dir) Dir {
		switch one {
		case Right:
			return Down
		case Up:
			return Right
		case Left:
			return Up
		default:
			return Left
		}
	})
}

// RotateBy applies n anticlockwise quarter turns. Only n mod 4 matters,
// so negative n turns clockwise.
func (d Dir) RotateBy(n int) Dir {
	switch n & 3 {
	case 1:
		return d.RotateCCW()
	case 2:
		return d.Reflect()
	case 3:
		return d.RotateCW()
	default:
		return d
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// glyphs holds one box-drawing rune per arm combination, indexed by mask.
var glyphs = [16]rune{
	' ', '╶', '╵', '└',
	'╴', '─', '┘', '┴',
	'╷', '┌', '│', '├',
	'┐', '┬', '┤', '┼',
}

// Glyph returns the box-drawing rune that shows these arms.
func (d Dir) Glyph() rune {
	return glyphs[d&AllDirs]
}

// Tile is the content of one grid cell: its arms plus the lock flag.
type Tile uint8

// Locked marks a tile the player has frozen against rotation.
const Locked Tile = 0x10

// Dirs returns the arms of the tile, without the lock flag.
func (t Tile) Dirs() Dir {
	return Dir(t) & AllDirs
}

// IsLocked reports whether the lock flag is set.
func (t Tile) IsLocked() bool {
	return t&Locked != 0
}

// Rotate returns the tile turned n quarter turns anticlockwise with its
// lock flag preserved.
func (t Tile) Rotate(n int) Tile {
	return Tile(t.Dirs().RotateBy(n)) | t&Locked
}
