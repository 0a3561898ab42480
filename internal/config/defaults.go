package config

import (
	_ "embed"
)

//go:embed defaults/net.yaml
var defaultNetYAML []byte

// DefaultNetConfig returns the built-in Net configuration.
func DefaultNetConfig() NetConfig {
	return NetConfig{
		Board: NetBoard{
			Width:  7,
			Height: 7,
		},
		Barriers: NetBarriers{
			Probability: 0.1,
		},
	}
}
