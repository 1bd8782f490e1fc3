package boards

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader("testdata")

	boards, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml is skipped, README.txt is ignored.
	var ids []string
	for _, b := range boards {
		ids = append(ids, b.ID)
	}
	if want := []string{"clusters", "gaps", "small"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("loaded IDs = %v, want %v", ids, want)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader("testdata")

	b, err := loader.LoadByID("small")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if b.Name != "Two moves" {
		t.Errorf("expected Name 'Two moves', got %q", b.Name)
	}
	if b.Columns != 4 || b.Rows != 4 {
		t.Errorf("expected 4x4, got %dx%d", b.Columns, b.Rows)
	}
	if b.Metadata["moves"] != "2" {
		t.Errorf("expected metadata moves=2, got %v", b.Metadata)
	}
	if b.FilePath != filepath.Join("testdata", "small.yaml") {
		t.Errorf("unexpected file path %q", b.FilePath)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for unknown boards")
	}
}

func TestBoardGridDetectsMoves(t *testing.T) {
	b, err := LoadFile(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	g, err := b.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	want := []match3.Movable{
		{From: match3.C(2, 2), To: match3.C(3, 2)},
		{From: match3.C(2, 1), To: match3.C(2, 2)},
	}
	if got := match3.FindMovables(g); !reflect.DeepEqual(got, want) {
		t.Errorf("FindMovables() = %v, want %v", got, want)
	}
}

func TestBoardGridEmptyCells(t *testing.T) {
	b, err := LoadFile(filepath.Join("testdata", "gaps.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	g, err := b.Grid()
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if g.FilledCount() != 6 {
		t.Errorf("FilledCount() = %d, want 6", g.FilledCount())
	}
	cell, _ := g.Get(match3.C(0, 0))
	if cell.Filled {
		t.Error("cell (0,0) should be empty")
	}
	if got, want := b.DistinctColors(), []match3.Color{1, 2, 3, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctColors() = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"malformed", "rows: [[0, 1", false},
		{"no rows", "id: empty\n", true},
		{"ragged", "rows:\n  - [0, 1, 2]\n  - [0, 1]\n", true},
		{"negative color", "rows:\n  - [0, -2, 1]\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Parse error = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestLoadFileDefaultsIDToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untitled.yml")
	if err := os.WriteFile(path, []byte("rows:\n  - [0, 1, 2, 3]\n"), 0o644); err != nil {
		t.Fatalf("failed to write board: %v", err)
	}

	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if b.ID != "untitled" {
		t.Errorf("expected ID 'untitled', got %q", b.ID)
	}
}

func TestNormalized(t *testing.T) {
	b, err := Parse([]byte("rows:\n  - [999, 888, -1]\n  - [7, 999, 888]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	n := b.Normalized()
	want := [][]match3.Color{{0, 1, EmptyCell}, {2, 0, 1}}
	if !reflect.DeepEqual(n.Colors, want) {
		t.Errorf("Normalized colors = %v, want %v", n.Colors, want)
	}
	if b.Colors[0][0] != 999 {
		t.Error("Normalized must not modify the original board")
	}
}
