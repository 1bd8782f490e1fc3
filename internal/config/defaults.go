package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Columns: 8,
			Rows:    8,
		},
		Palette: []string{
			"#e63946",
			"#f4a261",
			"#e9c46a",
			"#2a9d8f",
			"#457b9d",
			"#9b5de5",
		},
		Engine: EngineConfig{
			MaxInitAttempts:  100,
			MaxCascadePasses: 1000,
		},
		Timing: TimingConfig{
			StepDelayMS: 180,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
