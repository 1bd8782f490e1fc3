// match3 is a terminal match-3 puzzle built on a deterministic rules engine.
//
// Usage:
//
//	match3 play               - Play in the terminal
//	match3 serve              - Start SSH server for remote play
//	match3 analyze [file]     - Show clusters and legal moves of a board
//	match3 boards [dir]       - List board files in a directory
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tokens, clear runs, in your terminal",
	Long: `Match-3 is a terminal tile-matching puzzle. Swap two adjacent tokens
to line up three or more of the same color; matched runs clear, tokens fall
and new ones drop in from the top.

Available commands:
  play     - Play a board in this terminal
  serve    - Start SSH server for remote play
  analyze  - Print clusters and legal moves of a board
  boards   - List board files

Examples:
  match3 play
  match3 play --difficulty hard --seed 42
  match3 analyze boards/small.yaml
  match3 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(boardsCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
// The --difficulty flag overrides the preset named in the file.
func loadConfig() (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := cfg.Difficulty
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			return cfg, err
		}
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w *os.File, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
