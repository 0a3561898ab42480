package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNet loads Net configuration.
// Search order: customPath -> ~/.tuinet/configs/net.yaml -> ./configs/net.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadNet(customPath string) (NetConfig, error) {
	cfg := DefaultNetConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("net.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultNetConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "net.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultNetConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNetYAML, &cfg); err != nil {
		return DefaultNetConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path of a config file in the user's home.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tuinet", "configs", filename)
}

// ApplyNetPreset overrides the barrier probability from a difficulty preset.
func ApplyNetPreset(cfg *NetConfig, preset DifficultyPreset) {
	if p, ok := BarrierProbabilityForPreset(preset); ok {
		cfg.Barriers.Probability = p
	}
}
