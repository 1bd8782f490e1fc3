package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Defaults for the bounded loops in initialization.
const (
	DefaultMaxAttempts      = 100
	DefaultMaxCascadePasses = 1000
)

// Engine owns one grid and sequences swaps, cascades and playability checks.
// It is single-threaded: callers must not use it from several goroutines.
type Engine struct {
	columns int
	rows    int
	palette Palette
	seed    int64

	spawner *Spawner
	grid    *Grid
	state   State
	pass    int

	maxAttempts      int
	maxCascadePasses int
	logger           *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed sets the RNG seed used for board generation and refills.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithMaxAttempts caps how many boards initialization generates before
// failing with ErrUnsolvableConfiguration.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithMaxCascadePasses caps the cascade resolved on a freshly generated board.
// A board that keeps cascading past the cap counts as a failed attempt.
func WithMaxCascadePasses(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxCascadePasses = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine and generates a playable board: no clusters and at
// least one legal move.
func New(columns, rows int, palette Palette, opts ...Option) (*Engine, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrOutOfRange, columns, rows)
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		columns:          columns,
		rows:             rows,
		palette:          append(Palette(nil), palette...),
		maxAttempts:      DefaultMaxAttempts,
		maxCascadePasses: DefaultMaxCascadePasses,
		logger:           log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	spawner, err := NewSpawner(e.palette, e.seed)
	if err != nil {
		return nil, err
	}
	e.spawner = spawner

	if err := e.initialize(); err != nil {
		return nil, err
	}
	return e, nil
}

// initialize fills fresh boards until one settles without clusters and has
// a legal move. The current grid is replaced only on success.
func (e *Engine) initialize() error {
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		g, err := NewGrid(e.columns, e.rows)
		if err != nil {
			return err
		}
		Refill(g, e.spawner)

		if !e.settle(g) {
			e.logger.Debug("board rejected", "attempt", attempt, "reason", "cascade did not settle")
			continue
		}
		if !HasMovables(g) {
			e.logger.Debug("board rejected", "attempt", attempt, "reason", "no movables")
			continue
		}

		e.grid = g
		e.state = StateIdle
		e.pass = 0
		e.logger.Debug("board ready", "attempt", attempt, "columns", e.columns, "rows", e.rows)
		return nil
	}
	return fmt.Errorf("%w: no playable %dx%d board with %d colors after %d attempts",
		ErrUnsolvableConfiguration, e.columns, e.rows, len(e.palette), e.maxAttempts)
}

// settle resolves cascades on a board nobody has seen yet.
func (e *Engine) settle(g *Grid) bool {
	for range e.maxCascadePasses {
		clusters := DetectClusters(g)
		if len(clusters) == 0 {
			return true
		}
		ClearClusters(g, clusters)
		Compact(g)
		Refill(g, e.spawner)
	}
	return false
}

// Reset discards the current board and generates a new one. On failure the
// previous board and state are kept.
func (e *Engine) Reset() error {
	return e.initialize()
}

// BeginSwap validates and performs a player swap. When the swap makes no
// cluster it is reverted and false is returned. Otherwise the engine enters
// StateResolving and the caller drives the cascade with Step.
func (e *Engine) BeginSwap(a, b Coord) (bool, error) {
	switch e.state {
	case StateResolving:
		return false, ErrResolving
	case StateNoMovesLeft:
		return false, ErrNoMovesLeft
	}
	if err := e.grid.checkBounds(a); err != nil {
		return false, err
	}
	if err := e.grid.checkBounds(b); err != nil {
		return false, err
	}
	if !a.Adjacent(b) {
		return false, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidMove, a, b)
	}

	if err := Swap(e.grid, a, b); err != nil {
		return false, err
	}
	if !HasClusters(e.grid) {
		//nolint:errcheck // Same coordinates were just validated
		Swap(e.grid, a, b)
		return false, nil
	}

	e.state = StateResolving
	e.pass = 0
	return true, nil
}

// Step runs one cascade pass: clear every cluster, compact, refill. When no
// cluster remains afterwards the cascade settles and playability is checked.
// Intermediate boards are never checked for legal moves.
func (e *Engine) Step() (CascadeStep, error) {
	if e.state != StateResolving {
		return CascadeStep{}, ErrNotResolving
	}

	e.pass++
	clusters := DetectClusters(e.grid)
	step := CascadeStep{
		Pass:     e.pass,
		Clusters: clusters,
		Removed:  ClearClusters(e.grid, clusters),
		Falls:    Compact(e.grid),
	}
	step.Spawned = Refill(e.grid, e.spawner)
	step.ColumnSpawns = columnSpawns(step.Spawned, e.columns)

	e.logger.Debug("cascade pass",
		"pass", e.pass,
		"clusters", len(clusters),
		"removed", len(step.Removed),
	)

	if HasClusters(e.grid) {
		return step, nil
	}

	step.Settled = true
	if HasMovables(e.grid) {
		e.state = StateIdle
	} else {
		e.state = StateNoMovesLeft
		step.GameOver = true
		e.logger.Debug("no moves left", "passes", e.pass)
	}
	return step, nil
}

// AttemptSwap performs a swap and resolves the whole cascade.
func (e *Engine) AttemptSwap(a, b Coord) (SwapResult, error) {
	accepted, err := e.BeginSwap(a, b)
	if err != nil || !accepted {
		return SwapResult{}, err
	}

	result := SwapResult{Accepted: true}
	for {
		step, err := e.Step()
		if err != nil {
			return result, err
		}
		result.Steps = append(result.Steps, step)
		if step.Settled {
			result.GameOver = step.GameOver
			return result, nil
		}
	}
}

// State returns the current engine state.
func (e *Engine) State() State {
	return e.state
}

// Columns returns the board width.
func (e *Engine) Columns() int {
	return e.columns
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.rows
}

// Palette returns a copy of the palette.
func (e *Engine) Palette() Palette {
	return append(Palette(nil), e.palette...)
}

// Cell returns the cell at the given coordinate.
func (e *Engine) Cell(c Coord) (Cell, error) {
	return e.grid.Get(c)
}

// Field returns a copy of the board as rows of cells.
func (e *Engine) Field() [][]Cell {
	return e.grid.Cells()
}

// Grid returns an independent copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Clusters returns the clusters currently on the board.
func (e *Engine) Clusters() []Cluster {
	return DetectClusters(e.grid)
}

// Movables returns the legal moves on the current board.
func (e *Engine) Movables() []Movable {
	return FindMovables(e.grid)
}

// AllTokens returns every token on the board in row-major order.
func (e *Engine) AllTokens() []Token {
	return e.grid.Tokens()
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Columns:  e.columns,
		Rows:     e.rows,
		Cells:    e.grid.Cells(),
		State:    e.state,
		Clusters: len(DetectClusters(e.grid)),
		Movables: len(FindMovables(e.grid)),
		Pass:     e.pass,
	}
}
