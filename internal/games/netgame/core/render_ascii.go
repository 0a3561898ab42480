package core

import "strings"

// RenderASCII draws the board one glyph per tile, one row per line.
// Barriers and locks are not shown. Used by the gen command and tests.
func RenderASCII(s *State) string {
	var sb strings.Builder
	sb.Grow((s.Width*3 + 1) * s.Height)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			sb.WriteRune(s.Tile(x, y).Dirs().Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
