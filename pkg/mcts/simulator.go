package mcts

// Simulator runs batches of independent random playouts from a node,
// fanning them out to a WorkerPool, and back-propagates every outcome
// into the node (and its ancestors) before Run returns. Grounded on
// risk-agent/searcher/mcts.go's goroutine fan-out for one simulation
// round, adapted so each unit of work is a single playout submitted to a
// shared pool instead of an unbounded per-goroutine loop.
type Simulator[T MoveLike] struct {
	pool      *WorkerPool
	batchSize int
}

// NewSimulator builds a Simulator bound to pool, using batchSize playouts
// per Run call.
func NewSimulator[T MoveLike](pool *WorkerPool, batchSize int) *Simulator[T] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Simulator[T]{pool: pool, batchSize: batchSize}
}

// Run submits s.batchSize independent playouts cloned from node.State,
// waits for all of them, and back-propagates each outcome from node up
// to the root. It returns the first error encountered submitting work
// (ErrPoolShutdown during teardown); outcomes already submitted still
// run to completion and are backpropagated.
func (s *Simulator[T]) Run(node *NodeBase[T]) error {
	handles := make([]*Handle, 0, s.batchSize)
	var submitErr error

	for i := 0; i < s.batchSize; i++ {
		state := node.State
		handle, err := s.pool.Submit(func(rng RNG) {
			clone := state.Clone()
			outcome := clone.Simulate(rng)
			backpropagate(node, outcome)
		})
		if err != nil {
			submitErr = err
			break
		}
		handles = append(handles, handle)
	}

	for _, h := range handles {
		h.Wait()
	}

	return submitErr
}
