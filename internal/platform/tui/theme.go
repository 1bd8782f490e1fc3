package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Theme contains the visual styles for the board and HUD.
type Theme struct {
	// Token styles, indexed by engine color
	Tokens []lipgloss.Style
	Empty  lipgloss.Style

	// Cell overlays; foreground is inherited from the token
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Marked   lipgloss.Style // About to be cleared
	Spawned  lipgloss.Style // Entered on the last pass
	Hint     lipgloss.Style

	// Frame and HUD styles
	Board    lipgloss.Style
	Title    lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	Status   lipgloss.Style
	GameOver lipgloss.Style
}

// NewTheme builds a theme with one token style per palette color.
// Palette entries are lipgloss colors ("#ff0000", "9", ...).
func NewTheme(palette []string) Theme {
	tokens := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		tokens[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}

	return Theme{
		Tokens: tokens,
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Cursor:   lipgloss.NewStyle().Background(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("57")),
		Marked:   lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("231")),
		Spawned:  lipgloss.NewStyle().Underline(true),
		Hint:     lipgloss.NewStyle().Background(lipgloss.Color("22")),

		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		GameOver: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// token returns the style for an engine color, falling back to plain text.
func (t Theme) token(c match3.Color) lipgloss.Style {
	if c < 0 || int(c) >= len(t.Tokens) {
		return lipgloss.NewStyle()
	}
	return t.Tokens[c]
}

// EnginePalette returns the engine colors for n palette entries: 0..n-1.
func EnginePalette(n int) match3.Palette {
	p := make(match3.Palette, n)
	for i := range p {
		p[i] = match3.Color(i)
	}
	return p
}
