package netgame

// Preset defines a named board size offered by the size selector.
type Preset struct {
	ID     int
	Name   string
	Width  int
	Height int
}

// Presets lists the board sizes from smallest to largest.
// Classic matches the desktop game's default board.
var Presets = []Preset{
	{ID: 1, Name: "Tiny", Width: 5, Height: 5},
	{ID: 2, Name: "Small", Width: 7, Height: 7},
	{ID: 3, Name: "Medium", Width: 9, Height: 9},
	{ID: 4, Name: "Large", Width: 11, Height: 11},
	{ID: 5, Name: "Classic", Width: 13, Height: 11},
}

// PresetCount returns the total number of presets.
func PresetCount() int {
	return len(Presets)
}

// GetPreset returns the preset at the given index (0-indexed).
// Returns nil if the index is out of range.
func GetPreset(index int) *Preset {
	if index < 0 || index >= len(Presets) {
		return nil
	}
	return &Presets[index]
}
