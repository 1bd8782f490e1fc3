package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// NewEngine creates an engine from the game configuration. A zero seed is
// replaced by the current time.
func NewEngine(cfg config.Match3Config, seed int64, logger *log.Logger) (*match3.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []match3.Option{
		match3.WithSeed(seed),
		match3.WithMaxAttempts(cfg.Engine.MaxInitAttempts),
		match3.WithMaxCascadePasses(cfg.Engine.MaxCascadePasses),
	}
	if logger != nil {
		opts = append(opts, match3.WithLogger(logger))
	}

	engine, err := match3.New(cfg.Board.Columns, cfg.Board.Rows, EnginePalette(len(cfg.Palette)), opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: creating engine: %w", err)
	}
	return engine, nil
}
