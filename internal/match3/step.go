package match3

// State is the engine's position in the game loop.
type State int

const (
	// StateIdle waits for a swap.
	StateIdle State = iota
	// StateResolving has clusters on the grid awaiting Step calls.
	StateResolving
	// StateNoMovesLeft is terminal until Reset.
	StateNoMovesLeft
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateNoMovesLeft:
		return "no_moves_left"
	default:
		return "unknown"
	}
}

// CascadeStep describes one clear-compact-refill pass so a renderer can
// animate removal, falling and entry without diffing grids itself.
type CascadeStep struct {
	Pass     int       // 1-based pass number within the current cascade
	Clusters []Cluster // Clusters cleared by this pass
	Removed  []Removal // Tokens destroyed, each reported once
	Falls    []Fall    // Surviving tokens moved down by compaction
	Spawned  []Spawn   // New tokens, with entry drop per column

	// ColumnSpawns holds, per column, how many tokens entered from the top.
	ColumnSpawns []int

	Settled  bool // No clusters remain; the cascade is over
	GameOver bool // Settled with no legal move left
}

// SwapResult is the outcome of a full AttemptSwap.
type SwapResult struct {
	Accepted bool          // False when the swap made no cluster and was reverted
	Steps    []CascadeStep // Every pass, in order; empty when rejected
	GameOver bool
}

// columnSpawns counts spawned tokens per column.
func columnSpawns(spawned []Spawn, columns int) []int {
	counts := make([]int, columns)
	for _, s := range spawned {
		counts[s.At.X]++
	}
	return counts
}

// Snapshot captures the engine state for determinism testing and display.
type Snapshot struct {
	Columns  int
	Rows     int
	Cells    [][]Cell
	State    State
	Clusters int // Clusters on the grid; non-zero only while resolving
	Movables int // Legal moves available
	Pass     int // Passes run in the current cascade
}
