package match3

// FindMovables returns every adjacent pair whose swap would produce at least
// one cluster: horizontal pairs in row-major order, then vertical pairs in
// column-major order. Each pair is tried once with DrySwap and a full rescan.
func FindMovables(g *Grid) []Movable {
	var movables []Movable
	collect := func(m Movable) bool {
		movables = append(movables, m)
		return true
	}
	if scanSwaps(g, true, collect) {
		scanSwaps(Transpose(g), false, collect)
	}
	return movables
}

// HasMovables reports whether at least one move exists. It stops at the
// first hit.
func HasMovables(g *Grid) bool {
	found := false
	stop := func(Movable) bool {
		found = true
		return false
	}
	if scanSwaps(g, true, stop) {
		scanSwaps(Transpose(g), false, stop)
	}
	return found
}

// IsMovable reports whether swapping a and b would produce a cluster.
func IsMovable(g *Grid, a, b Coord) (bool, error) {
	trial, err := DrySwap(g, a, b)
	if err != nil {
		return false, err
	}
	return HasClusters(trial), nil
}

// scanSwaps tries every cell with its right neighbour. When horizontal is
// false the grid is a transposed view and coordinates are mapped back.
// visit returns false to stop; scanSwaps returns false if it was stopped.
func scanSwaps(g *Grid, horizontal bool, visit func(Movable) bool) bool {
	for y := range g.rows {
		for x := 0; x+1 < g.columns; x++ {
			a, b := C(x, y), C(x+1, y)
			trial, err := DrySwap(g, a, b)
			if err != nil || !HasClusters(trial) {
				continue
			}
			if !horizontal {
				a, b = a.transposed(), b.transposed()
			}
			if !visit(Movable{From: a, To: b}) {
				return false
			}
		}
	}
	return true
}
