// Package match3 provides the rules engine for a tile-matching puzzle.
// This package is UI-agnostic and deterministic for a given seed.
package match3

import "fmt"

// MinPaletteSize is the smallest palette an engine accepts.
const MinPaletteSize = 4

// Color identifies a token color. Values are caller-defined.
type Color int

// Palette is the fixed set of colors tokens are drawn from.
type Palette []Color

// Validate checks that the palette holds at least MinPaletteSize distinct colors.
func (p Palette) Validate() error {
	if len(p) < MinPaletteSize {
		return fmt.Errorf("%w: %d colors, need at least %d", ErrInvalidPalette, len(p), MinPaletteSize)
	}
	seen := make(map[Color]bool, len(p))
	for _, c := range p {
		if seen[c] {
			return fmt.Errorf("%w: duplicate color %d", ErrInvalidPalette, c)
		}
		seen[c] = true
	}
	return nil
}

// TokenID is a stable identifier for a token, independent of its position.
type TokenID uint64

// Token is a colored game piece.
type Token struct {
	ID    TokenID
	Color Color
}

// Cell is one grid position: either empty or holding exactly one token.
type Cell struct {
	Filled bool  // Whether the cell holds a token
	Token  Token // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Holding returns a cell that holds the given token.
func Holding(t Token) Cell {
	return Cell{Filled: true, Token: t}
}

// Matches reports whether two cells hold tokens of the same color.
// An empty cell never matches anything, including another empty cell.
func (c Cell) Matches(other Cell) bool {
	return c.Filled && other.Filled && c.Token.Color == other.Token.Color
}

// Coord is a (column, row) grid position. Column grows to the right,
// row grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Adjacent reports whether two coordinates are orthogonal neighbours.
func (c Coord) Adjacent(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// transposed swaps the axes of a coordinate.
func (c Coord) transposed() Coord {
	return Coord{X: c.Y, Y: c.X}
}

// Cluster is a maximal run of three or more same-colored tokens in one
// row or one column, anchored at its top-left-most cell.
type Cluster struct {
	Column     int
	Row        int
	Length     int
	Horizontal bool
}

// Cells returns the coordinates covered by the cluster.
func (cl Cluster) Cells() []Coord {
	cells := make([]Coord, cl.Length)
	for i := range cl.Length {
		if cl.Horizontal {
			cells[i] = C(cl.Column+i, cl.Row)
		} else {
			cells[i] = C(cl.Column, cl.Row+i)
		}
	}
	return cells
}

// Movable is an adjacent pair whose swap would produce at least one cluster.
type Movable struct {
	From Coord
	To   Coord
}

// String returns a string representation of the move.
func (m Movable) String() string {
	return m.From.String() + "-" + m.To.String()
}
