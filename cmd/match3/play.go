package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board in this terminal",
	Long: `Start a match-3 game in the current terminal.

Controls:
  Arrows/hjkl  - Move cursor
  Enter/Space  - Pick a token, then pick a neighbour to swap
  Esc          - Drop the pick
  ?            - Show a legal move
  R            - New board
  Ctrl+S       - Save the board as text
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 4 colors
  normal - 5 colors
  hard   - 6 colors

Examples:
  match3 play
  match3 play --difficulty easy
  match3 play --seed 42 --log-file match3.log --log-level debug
  match3 play --config ./my-match3.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write engine logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		if logger, err = newLogger(f, "match3"); err != nil {
			return err
		}
	}

	engine, err := tui.NewEngine(cfg, flagSeed, logger)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(engine, tui.ModelConfig{
		Theme:     tui.NewTheme(cfg.Palette),
		StepDelay: time.Duration(cfg.Timing.StepDelayMS) * time.Millisecond,
		Width:     width,
		Height:    height,
		Logger:    logger,
	})
}
