package match3

import (
	"reflect"
	"testing"
)

const (
	sentinelA Color = 999
	sentinelB Color = 888
)

func TestFindMovables(t *testing.T) {
	const A, B = sentinelA, sentinelB

	tests := []struct {
		name     string
		rows     [][]Color
		expected []Movable
	}{
		{
			name: "small board",
			rows: [][]Color{
				{0, 1, 2, 3},
				{1, A, B, A},
				{2, B, A, B},
				{3, 4, 5, A},
			},
			expected: []Movable{
				{From: C(2, 2), To: C(3, 2)},
				{From: C(2, 1), To: C(2, 2)},
			},
		},
		{
			name: "wide board",
			rows: [][]Color{
				{0, A, 2, 3, 4, 5, 6, B},
				{8, 9, A, 11, 12, A, A, B},
				{16, A, 18, A, 20, 21, B, A},
				{24, 25, A, 27, 28, 29, 30, 31},
				{32, 33, 34, 35, 36, 37, B, 39},
				{40, B, 42, A, 44, B, 46, B},
				{B, 49, 50, 51, A, 53, 54, 55},
				{56, B, 58, A, 60, 61, 62, 63},
				{64, B, 66, 67, 68, 69, 70, 71},
			},
			expected: []Movable{
				{From: C(1, 1), To: C(2, 1)},
				{From: C(1, 2), To: C(2, 2)},
				{From: C(2, 2), To: C(3, 2)},
				{From: C(6, 2), To: C(7, 2)},
				{From: C(0, 6), To: C(1, 6)},
				{From: C(3, 6), To: C(4, 6)},
				{From: C(1, 5), To: C(1, 6)},
				{From: C(2, 1), To: C(2, 2)},
				{From: C(2, 2), To: C(2, 3)},
				{From: C(6, 4), To: C(6, 5)},
				{From: C(7, 1), To: C(7, 2)},
			},
		},
		{
			name: "no moves",
			rows: [][]Color{
				{0, 1, 2, 3},
				{2, 3, 0, 1},
				{0, 1, 2, 3},
				{2, 3, 0, 1},
			},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := layout(t, tc.rows)
			before := g.Clone()

			got := FindMovables(g)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("FindMovables() =\n%v\nwant\n%v", got, tc.expected)
			}
			if HasMovables(g) != (len(tc.expected) > 0) {
				t.Errorf("HasMovables() = %v, want %v", HasMovables(g), len(tc.expected) > 0)
			}
			if !g.Equal(before) {
				t.Error("move search must not modify the grid")
			}
		})
	}
}

func TestIsMovable(t *testing.T) {
	const A, B = sentinelA, sentinelB
	g := layout(t, [][]Color{
		{0, 1, 2, 3},
		{1, A, B, A},
		{2, B, A, B},
		{3, 4, 5, A},
	})

	tests := []struct {
		a, b     Coord
		expected bool
	}{
		{C(2, 2), C(3, 2), true},
		{C(2, 1), C(2, 2), true},
		{C(0, 0), C(1, 0), false},
		{C(1, 1), C(1, 2), false},
	}

	for _, tc := range tests {
		got, err := IsMovable(g, tc.a, tc.b)
		if err != nil {
			t.Fatalf("IsMovable(%v, %v) failed: %v", tc.a, tc.b, err)
		}
		if got != tc.expected {
			t.Errorf("IsMovable(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
		}
	}
}
