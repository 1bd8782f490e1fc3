package match3

import (
	"errors"
	"testing"
)

func TestSwap(t *testing.T) {
	g := layout(t, [][]Color{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 2, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	top, _ := g.Get(C(2, 1))
	bottom, _ := g.Get(C(2, 2))

	if err := Swap(g, C(2, 1), C(2, 2)); err != nil {
		t.Fatalf("Swap() failed: %v", err)
	}

	gotTop, _ := g.Get(C(2, 1))
	gotBottom, _ := g.Get(C(2, 2))
	if gotTop != bottom || gotBottom != top {
		t.Errorf("Swap() did not exchange cells: got %+v/%+v", gotTop, gotBottom)
	}
}

func TestSwapOutOfRange(t *testing.T) {
	g := layout(t, [][]Color{{0, 1}, {2, 3}})
	before := g.Clone()

	if err := Swap(g, C(1, 1), C(2, 1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Swap() error = %v, want ErrOutOfRange", err)
	}
	if _, err := DrySwap(g, C(-1, 0), C(0, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DrySwap() error = %v, want ErrOutOfRange", err)
	}
	if !g.Equal(before) {
		t.Error("a rejected swap must leave the grid untouched")
	}
}

func TestDrySwapLeavesInputUntouched(t *testing.T) {
	g := layout(t, [][]Color{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{2, 3, 0, 1},
	})
	before := g.Clone()

	for y := range g.Rows() {
		for x := range g.Columns() {
			for _, n := range []Coord{C(x+1, y), C(x, y+1)} {
				if !g.InBounds(n) {
					continue
				}
				trial, err := DrySwap(g, C(x, y), n)
				if err != nil {
					t.Fatalf("DrySwap(%v, %v) failed: %v", C(x, y), n, err)
				}
				if !g.Equal(before) {
					t.Fatalf("DrySwap(%v, %v) mutated its input", C(x, y), n)
				}

				a, _ := trial.Get(C(x, y))
				b, _ := g.Get(n)
				if a != b {
					t.Errorf("DrySwap(%v, %v) result not swapped", C(x, y), n)
				}
			}
		}
	}
}

func TestClearAndCompact(t *testing.T) {
	g := layout(t, [][]Color{
		{0, 0, 0, 0, 2},
		{1, 0, 2, 2, 2},
		{0, 0, 0, 1, 2},
		{1, 2, 3, 4, 0},
		{1, 0, 1, 1, 1},
		{2, 0, 2, 3, 4},
		{1, 0, 3, 4, 0},
	})

	removed := ClearClusters(g, DetectClusters(g))
	Compact(g)

	assertColors(t, g, [][]Color{
		{gap, gap, gap, gap, gap},
		{gap, gap, gap, gap, gap},
		{1, gap, gap, gap, gap},
		{1, gap, gap, 1, gap},
		{1, gap, 3, 4, 0},
		{2, gap, 2, 3, 4},
		{1, 2, 3, 4, 0},
	})

	// 35 cells, 16 survive.
	if len(removed) != 19 {
		t.Errorf("ClearClusters() removed %d tokens, want 19", len(removed))
	}
	seen := make(map[TokenID]bool)
	for _, r := range removed {
		if seen[r.Token.ID] {
			t.Errorf("token %d removed twice", r.Token.ID)
		}
		seen[r.Token.ID] = true
	}
}

func TestCompactPreservesOrder(t *testing.T) {
	g := layout(t, [][]Color{
		{0, gap, 1},
		{gap, 2, gap},
		{3, gap, 4},
		{gap, gap, gap},
	})
	ids := func(x int) []TokenID {
		var out []TokenID
		for y := range g.Rows() {
			if cell := g.at(x, y); cell.Filled {
				out = append(out, cell.Token.ID)
			}
		}
		return out
	}
	var before [][]TokenID
	for x := range g.Columns() {
		before = append(before, ids(x))
	}

	falls := Compact(g)

	for x := range g.Columns() {
		after := ids(x)
		if len(after) != len(before[x]) {
			t.Fatalf("column %d lost tokens", x)
		}
		for i := range after {
			if after[i] != before[x][i] {
				t.Errorf("column %d reordered: %v, want %v", x, after, before[x])
			}
		}
	}

	assertColors(t, g, [][]Color{
		{gap, gap, gap},
		{gap, gap, gap},
		{0, gap, 1},
		{3, 2, 4},
	})

	for _, f := range falls {
		if f.Distance() <= 0 {
			t.Errorf("fall %+v has non-positive distance", f)
		}
		cell, _ := g.Get(f.To)
		if cell.Token != f.Token {
			t.Errorf("fall %+v does not match grid cell %+v", f, cell)
		}
	}
}

func TestCompactIdempotent(t *testing.T) {
	g := layout(t, [][]Color{
		{1, gap, 2, gap},
		{gap, 3, gap, 0},
		{2, gap, gap, 1},
	})

	Compact(g)
	once := g.Clone()
	falls := Compact(g)

	if !g.Equal(once) {
		t.Error("compacting twice should equal compacting once")
	}
	if len(falls) != 0 {
		t.Errorf("second Compact() reported %d falls, want 0", len(falls))
	}
}

func TestRefill(t *testing.T) {
	palette := Palette{0, 1, 2, 3}
	g := layout(t, [][]Color{
		{gap, gap, 1},
		{gap, 2, 3},
		{0, 1, 2},
	})
	before := g.Clone()

	s, err := NewSpawner(palette, 42)
	if err != nil {
		t.Fatalf("NewSpawner() failed: %v", err)
	}
	spawned := Refill(g, s)

	if len(spawned) != 3 {
		t.Fatalf("Refill() spawned %d tokens, want 3", len(spawned))
	}
	if g.FilledCount() != 9 {
		t.Errorf("FilledCount() = %d, want 9", g.FilledCount())
	}

	for y := range g.Rows() {
		for x := range g.Columns() {
			if old := before.at(x, y); old.Filled && g.at(x, y) != old {
				t.Errorf("Refill() replaced filled cell (%d,%d)", x, y)
			}
		}
	}

	wantDrop := map[Coord]int{C(0, 0): 2, C(1, 0): 1, C(0, 1): 2}
	ids := make(map[TokenID]bool)
	for _, tok := range g.Tokens() {
		if ids[tok.ID] {
			t.Errorf("duplicate token ID %d after refill", tok.ID)
		}
		ids[tok.ID] = true
	}
	for _, sp := range spawned {
		if want, ok := wantDrop[sp.At]; !ok || sp.Drop != want {
			t.Errorf("spawn at %v has drop %d, want %d", sp.At, sp.Drop, want)
		}
		valid := false
		for _, c := range palette {
			if sp.Token.Color == c {
				valid = true
			}
		}
		if !valid {
			t.Errorf("spawned color %d not in palette", sp.Token.Color)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	palette := Palette{0, 1, 2, 3, 4}
	a, _ := NewSpawner(palette, 7)
	b, _ := NewSpawner(palette, 7)

	for i := range 50 {
		ta, tb := a.Token(), b.Token()
		if ta != tb {
			t.Fatalf("token %d differs between equally seeded spawners: %+v vs %+v", i, ta, tb)
		}
	}
}

func TestNewSpawnerRejectsSmallPalette(t *testing.T) {
	if _, err := NewSpawner(Palette{0, 1, 2}, 1); !errors.Is(err, ErrInvalidPalette) {
		t.Errorf("NewSpawner() error = %v, want ErrInvalidPalette", err)
	}
}
