package match3

// minClusterLength is the shortest run that counts as a cluster.
const minClusterLength = 3

// DetectClusters returns every cluster on the grid: all horizontal clusters
// in row-major order, followed by all vertical clusters in column-major order.
// The grid is not modified.
func DetectClusters(g *Grid) []Cluster {
	clusters := scanRows(g, true)
	// Vertical runs are the horizontal runs of the transposed grid.
	return append(clusters, scanRows(Transpose(g), false)...)
}

// HasClusters reports whether the grid contains at least one cluster.
func HasClusters(g *Grid) bool {
	return len(DetectClusters(g)) > 0
}

// scanRows finds maximal runs left-to-right in each row. When horizontal is
// false the grid is a transposed view and anchors are mapped back.
func scanRows(g *Grid, horizontal bool) []Cluster {
	var clusters []Cluster
	for y := range g.rows {
		matches := 1
		for x := range g.columns {
			if x+1 < g.columns && g.at(x, y).Matches(g.at(x+1, y)) {
				matches++
				continue
			}
			if matches >= minClusterLength {
				cl := Cluster{
					Column:     x + 1 - matches,
					Row:        y,
					Length:     matches,
					Horizontal: horizontal,
				}
				if !horizontal {
					cl.Column, cl.Row = cl.Row, cl.Column
				}
				clusters = append(clusters, cl)
			}
			matches = 1
		}
	}
	return clusters
}
