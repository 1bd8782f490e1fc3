// Package boards loads hand-authored match-3 boards from YAML files.
package boards

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// EmptyCell marks an empty cell in a board file.
const EmptyCell match3.Color = -1

// ErrInvalidBoard is returned for layouts that cannot form a grid.
var ErrInvalidBoard = errors.New("boards: invalid board")

// yamlBoard represents the YAML structure for a board file.
type yamlBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     [][]int           `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Board represents a parsed board ready for use.
type Board struct {
	ID       string
	Name     string
	Columns  int
	Rows     int
	Colors   [][]match3.Color // Row-major, EmptyCell for empty cells
	Metadata map[string]string
	FilePath string
}

// Parse parses a YAML board.
func Parse(data []byte) (Board, error) {
	var yb yamlBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("boards: yaml unmarshal: %w", err)
	}
	if len(yb.Rows) == 0 || len(yb.Rows[0]) == 0 {
		return Board{}, fmt.Errorf("%w: no cells", ErrInvalidBoard)
	}

	b := Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Columns:  len(yb.Rows[0]),
		Rows:     len(yb.Rows),
		Colors:   make([][]match3.Color, len(yb.Rows)),
		Metadata: yb.Metadata,
	}
	for y, row := range yb.Rows {
		if len(row) != b.Columns {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), b.Columns)
		}
		b.Colors[y] = make([]match3.Color, len(row))
		for x, v := range row {
			c := match3.Color(v)
			if c < EmptyCell {
				return Board{}, fmt.Errorf("%w: negative color %d at (%d,%d)", ErrInvalidBoard, v, x, y)
			}
			b.Colors[y][x] = c
		}
	}
	return b, nil
}

// Grid builds a fresh grid from the board. Token IDs follow row-major order.
func (b *Board) Grid() (*match3.Grid, error) {
	g, err := match3.GridFromColors(b.Colors)
	if err != nil {
		return nil, fmt.Errorf("boards: %s: %w", b.ID, err)
	}
	for y, row := range b.Colors {
		for x, c := range row {
			if c != EmptyCell {
				continue
			}
			if err := g.Set(match3.C(x, y), match3.Empty()); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// DistinctColors returns the colors used by the board, in first-seen order.
func (b *Board) DistinctColors() []match3.Color {
	seen := make(map[match3.Color]bool)
	var out []match3.Color
	for _, row := range b.Colors {
		for _, c := range row {
			if c == EmptyCell || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Normalized returns a copy of the board with its colors renumbered 0..n-1
// in first-seen order, so any board can be drawn with a small palette.
func (b *Board) Normalized() Board {
	index := make(map[match3.Color]match3.Color)
	for i, c := range b.DistinctColors() {
		index[c] = match3.Color(i)
	}

	out := *b
	out.Colors = make([][]match3.Color, len(b.Colors))
	for y, row := range b.Colors {
		out.Colors[y] = make([]match3.Color, len(row))
		for x, c := range row {
			if c == EmptyCell {
				out.Colors[y][x] = EmptyCell
				continue
			}
			out.Colors[y][x] = index[c]
		}
	}
	return out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
