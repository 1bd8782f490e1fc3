package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level. Harder presets use
// more colors, which makes matches rarer.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a preset name, case-insensitively.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
}

// ColorsForPreset returns how many palette colors a preset plays with.
func ColorsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 5
	}
}

// ApplyPreset records the preset and truncates the palette to its color count.
// A palette shorter than the preset wants is left as is.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if n := ColorsForPreset(preset); len(cfg.Palette) > n {
		cfg.Palette = append([]string(nil), cfg.Palette[:n]...)
	}
}
