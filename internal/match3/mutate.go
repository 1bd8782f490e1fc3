package match3

import "math/rand"

// Swap exchanges two cells in place. Adjacency is not checked here; the
// engine enforces it for player moves.
func Swap(g *Grid, a, b Coord) error {
	if err := g.checkBounds(a); err != nil {
		return err
	}
	if err := g.checkBounds(b); err != nil {
		return err
	}
	ca, cb := g.at(a.X, a.Y), g.at(b.X, b.Y)
	g.put(a.X, a.Y, cb)
	g.put(b.X, b.Y, ca)
	return nil
}

// DrySwap returns an independent copy of the grid with the swap applied.
// The input grid is left untouched.
func DrySwap(g *Grid, a, b Coord) (*Grid, error) {
	if err := g.checkBounds(a); err != nil {
		return nil, err
	}
	if err := g.checkBounds(b); err != nil {
		return nil, err
	}
	trial := g.Clone()
	ca, cb := trial.at(a.X, a.Y), trial.at(b.X, b.Y)
	trial.put(a.X, a.Y, cb)
	trial.put(b.X, b.Y, ca)
	return trial, nil
}

// Removal records a token destroyed by clearing a cluster.
type Removal struct {
	Token Token
	At    Coord
}

// ClearClusters empties every cell covered by the clusters and returns the
// destroyed tokens. A cell shared by crossing clusters is removed once.
func ClearClusters(g *Grid, clusters []Cluster) []Removal {
	var removed []Removal
	for _, cl := range clusters {
		for _, c := range cl.Cells() {
			if !g.InBounds(c) {
				continue
			}
			cell := g.at(c.X, c.Y)
			if !cell.Filled {
				continue
			}
			removed = append(removed, Removal{Token: cell.Token, At: c})
			g.put(c.X, c.Y, Empty())
		}
	}
	return removed
}

// Fall records a token moved down by compaction.
type Fall struct {
	Token Token
	From  Coord
	To    Coord
}

// Distance returns how many rows the token fell.
func (f Fall) Distance() int {
	return f.To.Y - f.From.Y
}

// Compact lets tokens fall to the bottom of each column, preserving their
// vertical order, and leaves the vacated cells at the top empty.
// Falls are reported column by column, bottom-up.
func Compact(g *Grid) []Fall {
	var falls []Fall
	for x := range g.columns {
		write := g.rows - 1
		for y := g.rows - 1; y >= 0; y-- {
			cell := g.at(x, y)
			if !cell.Filled {
				continue
			}
			if y != write {
				g.put(x, write, cell)
				g.put(x, y, Empty())
				falls = append(falls, Fall{Token: cell.Token, From: C(x, y), To: C(x, write)})
			}
			write--
		}
	}
	return falls
}

// Spawner creates new tokens with colors drawn uniformly from a palette.
type Spawner struct {
	palette Palette
	rng     *rand.Rand
	next    TokenID
}

// NewSpawner creates a spawner seeded for deterministic output.
func NewSpawner(palette Palette, seed int64) (*Spawner, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	p := make(Palette, len(palette))
	copy(p, palette)
	return &Spawner{
		palette: p,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Token creates a new token with a fresh ID.
func (s *Spawner) Token() Token {
	s.next++
	return Token{
		ID:    s.next,
		Color: s.palette[s.rng.Intn(len(s.palette))],
	}
}

// skipPast makes sure new IDs never collide with tokens already on the grid.
func (s *Spawner) skipPast(g *Grid) {
	for _, cell := range g.cells {
		if cell.Filled && cell.Token.ID > s.next {
			s.next = cell.Token.ID
		}
	}
}

// Spawn records a token created by refill. Drop is the number of cells the
// token enters from above the grid, i.e. how many cells its column refilled.
type Spawn struct {
	Token Token
	At    Coord
	Drop  int
}

// Refill places a new token in every empty cell and returns them in
// row-major order. It never looks for clusters itself.
func Refill(g *Grid, s *Spawner) []Spawn {
	s.skipPast(g)

	drops := make([]int, g.columns)
	for y := range g.rows {
		for x := range g.columns {
			if !g.at(x, y).Filled {
				drops[x]++
			}
		}
	}

	var spawned []Spawn
	for y := range g.rows {
		for x := range g.columns {
			if g.at(x, y).Filled {
				continue
			}
			t := s.Token()
			g.put(x, y, Holding(t))
			spawned = append(spawned, Spawn{Token: t, At: C(x, y), Drop: drops[x]})
		}
	}
	return spawned
}
