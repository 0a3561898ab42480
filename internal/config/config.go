// Package config provides YAML-based puzzle configuration loading and
// difficulty presets.
package config

// NetConfig contains all configuration for the Net puzzle.
type NetConfig struct {
	Board    NetBoard    `yaml:"board"`
	Barriers NetBarriers `yaml:"barriers"`
}

// NetBoard defines the board size in tiles.
type NetBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NetBarriers defines how many walls the generator adds.
type NetBarriers struct {
	Probability float64 `yaml:"probability"` // 0.0 = none, 1.0 = every unused edge
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in order of difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// BarrierProbabilityForPreset returns the barrier probability of a preset.
// ok is false for the fixed preset and unknown names, which keep the
// configured value.
func BarrierProbabilityForPreset(preset DifficultyPreset) (p float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 0.0, true
	case DifficultyNormal:
		return 0.1, true
	case DifficultyHard:
		return 0.25, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset keeps the configured barriers.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
