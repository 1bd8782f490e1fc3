package match3

import "fmt"

// Grid is the rectangular token store. Cells are stored in row-major
// order: index = y*columns + x. Dimensions never change after creation.
type Grid struct {
	columns int
	rows    int
	cells   []Cell
}

// NewGrid creates a grid with all cells empty.
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrOutOfRange, columns, rows)
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}, nil
}

// GridFromColors builds a fully filled grid from rows of colors. Tokens get
// IDs 1..n in row-major order. All rows must have the same length.
func GridFromColors(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrOutOfRange)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	var id TokenID
	for y, row := range rows {
		if len(row) != g.columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrOutOfRange, y, len(row), g.columns)
		}
		for x, color := range row {
			id++
			g.cells[g.index(x, y)] = Holding(Token{ID: id, Color: color})
		}
	}
	return g, nil
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) index(x, y int) int {
	return y*g.columns + x
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

func (g *Grid) checkBounds(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrOutOfRange, c, g.columns, g.rows)
	}
	return nil
}

// Get returns the cell at the given coordinate.
func (g *Grid) Get(c Coord) (Cell, error) {
	if err := g.checkBounds(c); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(c.X, c.Y)], nil
}

// Set stores a cell at the given coordinate.
func (g *Grid) Set(c Coord, cell Cell) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[g.index(c.X, c.Y)] = cell
	return nil
}

// at and put skip bounds checks; callers iterate within the grid.
func (g *Grid) at(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

func (g *Grid) put(x, y int, cell Cell) {
	g.cells[g.index(x, y)] = cell
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		columns: g.columns,
		rows:    g.rows,
		cells:   cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents,
// token IDs included.
func (g *Grid) Equal(other *Grid) bool {
	if g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Transpose returns a new grid with rows and columns exchanged.
func Transpose(g *Grid) *Grid {
	t := &Grid{
		columns: g.rows,
		rows:    g.columns,
		cells:   make([]Cell, len(g.cells)),
	}
	for y := range g.rows {
		for x := range g.columns {
			t.put(y, x, g.at(x, y))
		}
	}
	return t
}

// Cells returns a copy of the cells as a slice of rows.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for y := range g.rows {
		out[y] = make([]Cell, g.columns)
		copy(out[y], g.cells[y*g.columns:(y+1)*g.columns])
	}
	return out
}

// Colors returns the grid as rows of colors, with empty cells reported as
// the given placeholder.
func (g *Grid) Colors(empty Color) [][]Color {
	out := make([][]Color, g.rows)
	for y := range g.rows {
		out[y] = make([]Color, g.columns)
		for x := range g.columns {
			cell := g.at(x, y)
			if cell.Filled {
				out[y][x] = cell.Token.Color
			} else {
				out[y][x] = empty
			}
		}
	}
	return out
}

// Tokens returns every token on the grid in row-major order.
func (g *Grid) Tokens() []Token {
	tokens := make([]Token, 0, len(g.cells))
	for _, cell := range g.cells {
		if cell.Filled {
			tokens = append(tokens, cell.Token)
		}
	}
	return tokens
}

// FilledCount returns the number of cells holding a token.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}
