package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// glyphs gives each color a distinct shape so the board reads without color.
var glyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '✚', '⬟'}

const emptyGlyph = '·'

// Glyph returns the rune drawn for a cell.
func Glyph(cell match3.Cell) rune {
	if !cell.Filled {
		return emptyGlyph
	}
	c := int(cell.Token.Color)
	if c < 0 {
		c = -c
	}
	return glyphs[c%len(glyphs)]
}

// boardView carries the per-cell overlays for one frame.
type boardView struct {
	cursor       match3.Coord
	showCursor   bool
	selected     match3.Coord
	hasSelection bool
	marked       map[match3.Coord]bool
	spawned      map[match3.Coord]bool
	hint         map[match3.Coord]bool
}

// renderBoard draws the field with overlays, two terminal columns per cell.
func renderBoard(field [][]match3.Cell, theme Theme, v boardView) string {
	var sb strings.Builder
	for y, row := range field {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x, cell := range row {
			at := match3.C(x, y)

			base := theme.Empty
			if cell.Filled {
				base = theme.token(cell.Token.Color)
			}

			style := base
			switch {
			case v.marked[at]:
				style = theme.Marked.Inherit(base)
			case v.hasSelection && v.selected == at:
				style = theme.Selected.Inherit(base)
			case v.showCursor && v.cursor == at:
				style = theme.Cursor.Inherit(base)
			case v.hint[at]:
				style = theme.Hint.Inherit(base)
			case v.spawned[at]:
				style = theme.Spawned.Inherit(base)
			}

			sb.WriteString(style.Render(string(Glyph(cell)) + " "))
		}
	}
	return theme.Board.Render(sb.String())
}

// RenderGrid draws a grid with the given cells highlighted as matched.
func RenderGrid(g *match3.Grid, theme Theme, marked map[match3.Coord]bool) string {
	return renderBoard(g.Cells(), theme, boardView{marked: marked})
}

// BoardText returns the field as plain glyphs, one line per row.
func BoardText(field [][]match3.Cell) string {
	lines := make([]string, len(field))
	for y, row := range field {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteRune(Glyph(cell))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// ClusterCells returns the set of cells covered by the clusters.
func ClusterCells(clusters []match3.Cluster) map[match3.Coord]bool {
	if len(clusters) == 0 {
		return nil
	}
	set := make(map[match3.Coord]bool)
	for _, cl := range clusters {
		for _, c := range cl.Cells() {
			set[c] = true
		}
	}
	return set
}

// hud renders a label/value pair.
func hud(theme Theme, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.HUDLabel.Render(label+": "),
		theme.HUDValue.Render(value),
	)
}
