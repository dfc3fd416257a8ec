package uttt

import "github.com/danilarff86/mcts/pkg/mcts"

// Engine specializes the generic search engine to Move, giving callers a
// concrete type instead of an instantiated generic one at every call
// site.
type Engine = mcts.Engine[Move]

// NewEngine builds a search engine rooted at opening (NoCell for "Us
// moves first"), applying opts to the generic constructor.
func NewEngine(opening Cell, opts ...mcts.Option[Move]) *Engine {
	return mcts.NewEngine[Move](NewState(opening), opts...)
}

// StateOf recovers the uttt.State a node holds, for callers (notation,
// CLI rendering) that need board access rather than just the tree's
// bookkeeping fields.
func StateOf(n *mcts.NodeBase[Move]) *State {
	return n.State.(*State)
}
