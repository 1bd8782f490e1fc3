package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// ModelConfig holds presentation settings for a Model.
type ModelConfig struct {
	Theme     Theme
	StepDelay time.Duration // Pause between cascade passes
	Width     int
	Height    int
	Logger    *log.Logger
}

// Model is the Bubble Tea model for one match-3 board. It drives the engine
// one cascade pass per StepMsg so clears and refills are visible.
type Model struct {
	engine *match3.Engine
	theme  Theme
	keys   KeyMap
	help   help.Model
	delay  time.Duration
	logger *log.Logger

	cursor       match3.Coord
	selected     match3.Coord
	hasSelection bool
	marked       map[match3.Coord]bool
	spawned      map[match3.Coord]bool
	hint         map[match3.Coord]bool

	status  string
	moves   int
	lastRun int // Passes in the last cascade

	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(engine *match3.Engine, cfg ModelConfig) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		engine: engine,
		theme:  cfg.Theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		delay:  cfg.StepDelay,
		logger: logger,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StepMsg:
		return m.handleStep()
	}

	return m, nil
}

// handleKey processes keyboard input. Board input is ignored mid-cascade.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.saveBoard()
		return m, nil
	}

	if m.engine.State() == match3.StateResolving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Select):
		return m.pick()
	case key.Matches(msg, m.keys.Cancel):
		m.hasSelection = false
	case key.Matches(msg, m.keys.Hint):
		m.showHint()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	}
	return m, nil
}

// moveCursor moves the cursor, clamped to the board.
func (m *Model) moveCursor(dx, dy int) {
	x := min(max(m.cursor.X+dx, 0), m.engine.Columns()-1)
	y := min(max(m.cursor.Y+dy, 0), m.engine.Rows()-1)
	m.cursor = match3.C(x, y)
}

// pick selects the cursor cell, or swaps it with the selected neighbour.
func (m Model) pick() (tea.Model, tea.Cmd) {
	if m.engine.State() == match3.StateNoMovesLeft {
		return m, nil
	}
	m.spawned = nil
	m.hint = nil
	m.status = ""

	if !m.hasSelection {
		m.selected = m.cursor
		m.hasSelection = true
		return m, nil
	}

	from := m.selected
	switch {
	case from == m.cursor:
		m.hasSelection = false
		return m, nil
	case !from.Adjacent(m.cursor):
		m.selected = m.cursor
		return m, nil
	}

	m.hasSelection = false
	accepted, err := m.engine.BeginSwap(from, m.cursor)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if !accepted {
		m.status = "No match there"
		return m, nil
	}

	m.moves++
	m.marked = ClusterCells(m.engine.Clusters())
	m.logger.Debug("swap accepted", "from", from, "to", m.cursor, "clusters", len(m.marked))
	return m, stepCmd(m.delay)
}

// handleStep runs one cascade pass and schedules the next if needed.
func (m Model) handleStep() (tea.Model, tea.Cmd) {
	step, err := m.engine.Step()
	if err != nil {
		if !errors.Is(err, match3.ErrNotResolving) {
			m.logger.Error("cascade step failed", "error", err)
		}
		return m, nil
	}

	m.spawned = make(map[match3.Coord]bool, len(step.Spawned))
	for _, s := range step.Spawned {
		m.spawned[s.At] = true
	}

	if !step.Settled {
		m.marked = ClusterCells(m.engine.Clusters())
		return m, stepCmd(m.delay)
	}

	m.marked = nil
	m.lastRun = step.Pass
	if step.Pass > 1 {
		m.status = fmt.Sprintf("Cascade x%d", step.Pass)
	}
	if step.GameOver {
		m.status = "No moves left"
	}
	return m, nil
}

// showHint highlights the first legal move.
func (m *Model) showHint() {
	movables := m.engine.Movables()
	if len(movables) == 0 {
		return
	}
	m.hint = map[match3.Coord]bool{
		movables[0].From: true,
		movables[0].To:   true,
	}
}

// restart replaces the board; on failure the old board stays.
func (m *Model) restart() {
	if err := m.engine.Reset(); err != nil {
		m.status = err.Error()
		return
	}
	m.hasSelection = false
	m.marked = nil
	m.spawned = nil
	m.hint = nil
	m.moves = 0
	m.lastRun = 0
	m.status = "New board"
}

// saveBoard writes the board as plain text to ~/.match3/boards.
func (m *Model) saveBoard() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".match3", "boards")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("board_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(BoardText(m.engine.Field())+"\n"), 0o600); err != nil {
		m.status = "Save failed"
		return
	}
	m.status = "Saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := renderBoard(m.engine.Field(), m.theme, boardView{
		cursor:       m.cursor,
		showCursor:   m.engine.State() != match3.StateResolving,
		selected:     m.selected,
		hasSelection: m.hasSelection,
		marked:       m.marked,
		spawned:      m.spawned,
		hint:         m.hint,
	})

	stats := strings.Join([]string{
		hud(m.theme, "Moves", fmt.Sprint(m.moves)),
		hud(m.theme, "Last cascade", fmt.Sprint(m.lastRun)),
		hud(m.theme, "Available", fmt.Sprint(len(m.engine.Movables()))),
	}, "   ")

	status := m.theme.Status.Render(m.status)
	if m.engine.State() == match3.StateNoMovesLeft {
		status = m.theme.GameOver.Render("NO MOVES LEFT  ·  press r for a new board")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("M A T C H - 3"),
		"",
		board,
		"",
		stats,
		status,
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Cursor returns the cursor position.
func (m Model) Cursor() match3.Coord {
	return m.cursor
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program for a local game.
func Run(engine *match3.Engine, cfg ModelConfig) error {
	model := NewModel(engine, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
