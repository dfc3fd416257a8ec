package mcts

import "errors"

// Illegal-move and Pool-shutdown are ordinary errors returned to the
// caller; State-terminal is a contract violation, and GameState
// implementations panic in Apply instead (see internal/uttt/state.go).
var (
	// ErrIllegalMove is returned by Engine.OpponentMove when the given
	// cell does not match any child of the current cursor.
	ErrIllegalMove = errors.New("mcts: illegal move")

	// ErrPoolShutdown is returned by WorkerPool.Submit once Shutdown has
	// been called; occurs only during process teardown.
	ErrPoolShutdown = errors.New("mcts: worker pool is shut down")

	// ErrTreeSizeExceeded is returned by node expansion when the
	// configured node budget (WithMaxTreeSize) would be exceeded. The
	// tree already built remains valid; Engine.search abandons the rest
	// of the current search.
	ErrTreeSizeExceeded = errors.New("mcts: tree size budget exceeded")
)
