package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color code.
type Color uint8

// Colors used by the puzzle renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorWhite:        "white",
	ColorGray:         "gray",
	ColorBrightGreen:  "bright green",
	ColorBrightYellow: "bright yellow",
	ColorBrightWhite:  "bright white",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
