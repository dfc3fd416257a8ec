package mcts

import "sync/atomic"

// Node flag bits: a node starts at canExpandFlag, moves to
// expandingFlag while its children slice is being built (guards against
// a second concurrent expansion attempt), then settles at expandedFlag.
// terminalFlag is independent and set once at construction time.
const (
	canExpandFlag  uint32 = 0
	expandingFlag  uint32 = 1
	expandedFlag   uint32 = 2
	terminalFlag   uint32 = 4
)

// NodeBase is a search-tree node: it owns one
// game state, holds a non-owning back-reference to its parent, owns its
// children as a value slice created exactly once (so pointers into it
// stay valid for the node's lifetime), and carries the three counters
// updated concurrently by back-propagation.
type NodeBase[T MoveLike] struct {
	Move     T // the move that led into this node; zero value at the root
	State    GameState[T]
	Parent   *NodeBase[T]
	Children []NodeBase[T]

	hits        atomic.Int64
	misses      atomic.Int64
	totalTrials atomic.Int64
	flags       atomic.Uint32
}

// NewRootNode builds the tree's root from the initial game state.
func NewRootNode[T MoveLike](state GameState[T], terminal bool) *NodeBase[T] {
	n := &NodeBase[T]{State: state}
	n.flags.Store(terminalFlagFor(terminal))
	return n
}

// newChildNode builds a child for a candidate move; the state it owns is
// produced by cloning the parent's state and applying the move, so each
// node owns a state exclusively and never shares it with a sibling.
func newChildNode[T MoveLike](parent *NodeBase[T], move T, state GameState[T], terminal bool) NodeBase[T] {
	n := NodeBase[T]{Move: move, State: state, Parent: parent}
	n.flags.Store(terminalFlagFor(terminal))
	return n
}

func terminalFlagFor(terminal bool) uint32 {
	if terminal {
		return terminalFlag
	}
	return canExpandFlag
}

// Hits, Misses, TotalTrials read the counters; callers only need atomic
// visibility, never perfect ordering with respect to Expanded/Terminal.
func (n *NodeBase[T]) Hits() int64        { return n.hits.Load() }
func (n *NodeBase[T]) Misses() int64      { return n.misses.Load() }
func (n *NodeBase[T]) TotalTrials() int64 { return n.totalTrials.Load() }

// recordOutcome applies one playout result to this node's counters.
// Draws only increment totalTrials.
func (n *NodeBase[T]) recordOutcome(outcome Outcome) {
	n.totalTrials.Add(1)
	switch outcome {
	case Hit:
		n.hits.Add(1)
	case Miss:
		n.misses.Add(1)
	}
}

// Terminal reports whether this node's state is a finished game.
func (n *NodeBase[T]) Terminal() bool {
	return n.flags.Load()&terminalFlag == terminalFlag
}

// Expanded reports whether the children slice has been materialized
// (possibly to length zero, for a terminal state).
func (n *NodeBase[T]) Expanded() bool {
	return n.flags.Load()&expandedFlag == expandedFlag
}

func (n *NodeBase[T]) expanding() bool {
	return n.flags.Load()&expandingFlag == expandingFlag
}

// beginExpanding claims the right to build Children; returns false if
// another goroutine already claimed it (only relevant under the
// root-parallel / multi-engine use case; the single search-thread model
// never contends on this in practice).
func (n *NodeBase[T]) beginExpanding() bool {
	return n.flags.CompareAndSwap(canExpandFlag, expandingFlag)
}

func (n *NodeBase[T]) finishExpanding() {
	n.flags.Store(expandedFlag)
}
