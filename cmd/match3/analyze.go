package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/boards"
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var flagResolve bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [board.yaml]",
	Short: "Print clusters and legal moves of a board",
	Long: `Analyze a board file, or a freshly generated board when no file is given.

Prints the board with matched cells highlighted, every cluster in detection
order (rows first, then columns) and every legal move in search order.

With --resolve, a board that already has clusters is cascaded pass by pass
until it settles; refills use --seed.

Examples:
  match3 analyze
  match3 analyze --seed 7 --difficulty hard
  match3 analyze boards/wide.yaml
  match3 analyze boards/clusters.yaml --resolve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagResolve, "resolve", false, "Cascade existing clusters until the board settles")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var (
		title string
		grid  *match3.Grid
	)
	if len(args) == 1 {
		b, loadErr := boards.LoadFile(args[0])
		if loadErr != nil {
			return loadErr
		}
		norm := b.Normalized()
		if grid, err = norm.Grid(); err != nil {
			return err
		}
		title = fmt.Sprintf("%s (%dx%d, %d colors)", b.ID, b.Columns, b.Rows, len(b.DistinctColors()))
	} else {
		engine, engineErr := tui.NewEngine(cfg, flagSeed, nil)
		if engineErr != nil {
			return engineErr
		}
		grid = engine.Grid()
		title = fmt.Sprintf("generated (%dx%d, %d colors)", engine.Columns(), engine.Rows(), len(engine.Palette()))
	}

	theme := tui.NewTheme(displayPalette(cfg, grid))
	fmt.Fprintf(out, "Board: %s\n\n", title)
	report(out, grid, theme)

	if !flagResolve || !match3.HasClusters(grid) {
		return nil
	}
	return resolve(out, grid, theme, cfg)
}

// report prints the board, its clusters and its legal moves.
func report(out io.Writer, g *match3.Grid, theme tui.Theme) {
	clusters := match3.DetectClusters(g)
	fmt.Fprintln(out, tui.RenderGrid(g, theme, tui.ClusterCells(clusters)))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Clusters: %d\n", len(clusters))
	if len(clusters) > 0 {
		fmt.Fprintf(out, "  %-3s  %-8s  %-6s  %s\n", "#", "Anchor", "Length", "Direction")
		fmt.Fprintf(out, "  %-3s  %-8s  %-6s  %s\n", "-", "------", "------", "---------")
		for i, cl := range clusters {
			fmt.Fprintf(out, "  %-3d  %-8s  %-6d  %s\n", i+1, match3.C(cl.Column, cl.Row), cl.Length, direction(cl.Horizontal))
		}
	}
	fmt.Fprintln(out)

	movables := match3.FindMovables(g)
	fmt.Fprintf(out, "Movables: %d\n", len(movables))
	if len(movables) > 0 {
		fmt.Fprintf(out, "  %-3s  %-8s  %-8s  %s\n", "#", "From", "To", "Direction")
		fmt.Fprintf(out, "  %-3s  %-8s  %-8s  %s\n", "-", "----", "--", "---------")
		for i, mv := range movables {
			fmt.Fprintf(out, "  %-3d  %-8s  %-8s  %s\n", i+1, mv.From, mv.To, direction(mv.From.Y == mv.To.Y))
		}
	}
}

// resolve cascades the grid until no clusters remain, printing each pass.
func resolve(out io.Writer, g *match3.Grid, theme tui.Theme, cfg config.Match3Config) error {
	spawner, err := match3.NewSpawner(tui.EnginePalette(max(len(cfg.Palette), match3.MinPaletteSize)), flagSeed)
	if err != nil {
		return err
	}

	passes := cfg.Engine.MaxCascadePasses
	if passes <= 0 {
		passes = match3.DefaultMaxCascadePasses
	}
	for pass := 1; pass <= passes; pass++ {
		clusters := match3.DetectClusters(g)
		if len(clusters) == 0 {
			return nil
		}
		removed := match3.ClearClusters(g, clusters)
		falls := match3.Compact(g)
		spawned := match3.Refill(g, spawner)

		fmt.Fprintf(out, "\n%s\n", strings.Repeat("─", 32))
		fmt.Fprintf(out, "Pass %d: cleared %d, moved %d, spawned %d\n\n", pass, len(removed), len(falls), len(spawned))
		report(out, g, theme)
	}
	return fmt.Errorf("board still cascading after %d passes", passes)
}

// displayPalette returns enough configured colors to draw every token.
func displayPalette(cfg config.Match3Config, g *match3.Grid) []string {
	palette := append([]string(nil), config.DefaultMatch3Config().Palette...)
	copy(palette, cfg.Palette)
	for _, t := range g.Tokens() {
		for int(t.Color) >= len(palette) {
			palette = append(palette, fmt.Sprint(len(palette)%15+1))
		}
	}
	return palette
}

func direction(horizontal bool) string {
	if horizontal {
		return "horizontal"
	}
	return "vertical"
}
