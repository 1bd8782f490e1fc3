// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// minPaletteSize mirrors the engine's lower bound on distinct colors.
const minPaletteSize = 4

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    []string         `yaml:"palette"`
	Engine     EngineConfig     `yaml:"engine"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the board size.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// EngineConfig bounds the engine's initialization loops.
type EngineConfig struct {
	MaxInitAttempts  int `yaml:"max_init_attempts"`
	MaxCascadePasses int `yaml:"max_cascade_passes"`
}

// TimingConfig defines presentation pacing.
type TimingConfig struct {
	StepDelayMS int `yaml:"step_delay_ms"` // Pause between cascade steps
}

// Validate reports the first unusable setting.
func (c Match3Config) Validate() error {
	if c.Board.Columns <= 0 || c.Board.Rows <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Board.Columns, c.Board.Rows)
	}
	if len(c.Palette) < minPaletteSize {
		return fmt.Errorf("%w: palette has %d colors, need at least %d",
			ErrInvalidConfig, len(c.Palette), minPaletteSize)
	}
	seen := make(map[string]bool, len(c.Palette))
	for _, color := range c.Palette {
		if seen[color] {
			return fmt.Errorf("%w: duplicate palette color %q", ErrInvalidConfig, color)
		}
		seen[color] = true
	}
	if c.Engine.MaxInitAttempts < 0 || c.Engine.MaxCascadePasses < 0 {
		return fmt.Errorf("%w: engine limits must not be negative", ErrInvalidConfig)
	}
	if c.Timing.StepDelayMS < 0 {
		return fmt.Errorf("%w: step delay must not be negative", ErrInvalidConfig)
	}
	if c.Difficulty != "" {
		if _, err := ParsePreset(string(c.Difficulty)); err != nil {
			return err
		}
	}
	return nil
}
