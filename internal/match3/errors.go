package match3

import "errors"

// Sentinel errors for engine operations. Errors returned by this package wrap
// one of these with context; test with errors.Is.
var (
	// ErrOutOfRange indicates a coordinate or dimension outside the grid bounds.
	ErrOutOfRange = errors.New("match3: out of range")
	// ErrInvalidPalette indicates fewer than MinPaletteSize distinct colors.
	ErrInvalidPalette = errors.New("match3: invalid palette")
	// ErrInvalidMove indicates a swap between cells that are not orthogonal neighbours.
	ErrInvalidMove = errors.New("match3: invalid move")
	// ErrUnsolvableConfiguration indicates initialization gave up after its retry cap.
	ErrUnsolvableConfiguration = errors.New("match3: unsolvable configuration")
	// ErrNoMovesLeft indicates a command issued after the game ran out of moves.
	ErrNoMovesLeft = errors.New("match3: no moves left")
	// ErrResolving indicates a swap issued while a cascade is still resolving.
	ErrResolving = errors.New("match3: cascade in progress")
	// ErrNotResolving indicates a cascade step requested with nothing to resolve.
	ErrNotResolving = errors.New("match3: no cascade in progress")
)
