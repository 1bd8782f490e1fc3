package match3

import (
	"reflect"
	"testing"
)

func TestDetectClusters(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]Color
		expected []Cluster
	}{
		{
			name: "row clusters",
			rows: [][]Color{
				{0, 0, 0, 1, 2},
				{0, 1, 2, 3, 4},
				{1, 1, 1, 2, 3},
				{4, 4, 4, 4, 4},
				{0, 0, 3, 3, 3},
			},
			expected: []Cluster{
				{Column: 0, Row: 0, Length: 3, Horizontal: true},
				{Column: 0, Row: 2, Length: 3, Horizontal: true},
				{Column: 0, Row: 3, Length: 5, Horizontal: true},
				{Column: 2, Row: 4, Length: 3, Horizontal: true},
			},
		},
		{
			name: "column clusters",
			rows: [][]Color{
				{0, 0, 1, 4, 0},
				{0, 1, 1, 4, 0},
				{0, 2, 1, 4, 3},
				{1, 3, 2, 4, 3},
				{2, 4, 3, 4, 3},
			},
			expected: []Cluster{
				{Column: 0, Row: 0, Length: 3, Horizontal: false},
				{Column: 2, Row: 0, Length: 3, Horizontal: false},
				{Column: 3, Row: 0, Length: 5, Horizontal: false},
				{Column: 4, Row: 2, Length: 3, Horizontal: false},
			},
		},
		{
			name: "rows before columns",
			rows: [][]Color{
				{0, 0, 0, 0, 2},
				{1, 0, 2, 2, 2},
				{0, 0, 0, 1, 2},
				{1, 2, 3, 4, 0},
				{1, 0, 1, 1, 1},
				{2, 0, 2, 3, 4},
				{1, 0, 3, 4, 0},
			},
			expected: []Cluster{
				{Column: 0, Row: 0, Length: 4, Horizontal: true},
				{Column: 2, Row: 1, Length: 3, Horizontal: true},
				{Column: 0, Row: 2, Length: 3, Horizontal: true},
				{Column: 2, Row: 4, Length: 3, Horizontal: true},
				{Column: 1, Row: 0, Length: 3, Horizontal: false},
				{Column: 1, Row: 4, Length: 3, Horizontal: false},
				{Column: 4, Row: 0, Length: 3, Horizontal: false},
			},
		},
		{
			name: "no clusters",
			rows: [][]Color{
				{0, 1, 0},
				{1, 0, 1},
				{0, 1, 0},
			},
			expected: nil,
		},
		{
			name: "empty cells never match",
			rows: [][]Color{
				{gap, gap, gap, 1},
				{gap, 2, 2, 1},
				{gap, 3, 3, 1},
			},
			expected: []Cluster{
				{Column: 3, Row: 0, Length: 3, Horizontal: false},
			},
		},
		{
			name: "run broken by empty cell",
			rows: [][]Color{
				{1, 1, gap, 1, 1},
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := layout(t, tc.rows)
			before := g.Clone()

			got := DetectClusters(g)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("DetectClusters() =\n%+v\nwant\n%+v", got, tc.expected)
			}
			if !g.Equal(before) {
				t.Error("DetectClusters must not modify the grid")
			}
		})
	}
}

func TestDetectClustersTransposeSymmetry(t *testing.T) {
	g := layout(t, [][]Color{
		{0, 0, 0, 0, 2},
		{1, 0, 2, 2, 2},
		{0, 0, 0, 1, 2},
		{1, 2, 3, 4, 0},
		{1, 0, 1, 1, 1},
		{2, 0, 2, 3, 4},
		{1, 0, 3, 4, 0},
	})

	var vertical []Cluster
	for _, cl := range DetectClusters(g) {
		if !cl.Horizontal {
			vertical = append(vertical, cl)
		}
	}

	var mirrored []Cluster
	for _, cl := range scanRows(Transpose(g), true) {
		mirrored = append(mirrored, Cluster{
			Column:     cl.Row,
			Row:        cl.Column,
			Length:     cl.Length,
			Horizontal: false,
		})
	}

	if !reflect.DeepEqual(vertical, mirrored) {
		t.Errorf("vertical clusters %+v differ from transposed horizontal scan %+v", vertical, mirrored)
	}
}

func TestClusterCells(t *testing.T) {
	h := Cluster{Column: 1, Row: 2, Length: 3, Horizontal: true}
	if got, want := h.Cells(), []Coord{C(1, 2), C(2, 2), C(3, 2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("horizontal Cells() = %v, want %v", got, want)
	}

	v := Cluster{Column: 4, Row: 0, Length: 4}
	if got, want := v.Cells(), []Coord{C(4, 0), C(4, 1), C(4, 2), C(4, 3)}; !reflect.DeepEqual(got, want) {
		t.Errorf("vertical Cells() = %v, want %v", got, want)
	}
}
