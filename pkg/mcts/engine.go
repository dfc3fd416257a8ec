package mcts

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Default timing constants: the initial search budget is larger than
// per-move budgets to amortize the zero-information startup.
const (
	DefaultInitialBudget = 995 * time.Millisecond
	DefaultMoveBudget    = 100 * time.Millisecond
)

// Engine is the public façade: it owns the root node and a cursor into
// the tree, and exposes exactly the interface a CLI or test harness
// needs.
type Engine[T MoveLike] struct {
	root   *NodeBase[T]
	cursor *NodeBase[T]

	pool       *WorkerPool
	ownsPool   bool
	sim        *Simulator[T]
	batchSize  int
	engineRand *rand.Rand

	explorationParam float64
	initialBudget    time.Duration
	moveBudget       time.Duration
	maxTreeSize      int
	size             int64

	log zerolog.Logger
}

// Option configures an Engine at construction time, grounded on
// risk-agent/searcher/mcts.go's functional-option pattern
// (WithDuration, WithEpisodes, ...).
type Option[T MoveLike] func(*Engine[T])

// WithExplorationParam overrides the UCB1 exploration constant.
func WithExplorationParam[T MoveLike](c float64) Option[T] {
	return func(e *Engine[T]) { e.explorationParam = c }
}

// WithInitialBudget overrides the construction-time search budget.
func WithInitialBudget[T MoveLike](d time.Duration) Option[T] {
	return func(e *Engine[T]) { e.initialBudget = d }
}

// WithMoveBudget overrides the per-move search budget.
func WithMoveBudget[T MoveLike](d time.Duration) Option[T] {
	return func(e *Engine[T]) { e.moveBudget = d }
}

// WithBatchSize overrides the number of playouts per simulation batch.
// Composes with WithWorkerPool regardless of the order the two are
// passed in: both only record their setting, and the Simulator is built
// once, after every option has run.
func WithBatchSize[T MoveLike](n int) Option[T] {
	return func(e *Engine[T]) { e.batchSize = n }
}

// WithWorkerPool injects a pool the Engine does not own (and therefore
// will not shut down on Close); use this to share one pool across
// several engines instead of the process-wide singleton. Composes with
// WithBatchSize regardless of order, see WithBatchSize.
func WithWorkerPool[T MoveLike](pool *WorkerPool) Option[T] {
	return func(e *Engine[T]) {
		e.pool = pool
		e.ownsPool = false
	}
}

// WithMaxTreeSize bounds the number of nodes the engine will allocate;
// zero (the default) means unbounded.
func WithMaxTreeSize[T MoveLike](n int) Option[T] {
	return func(e *Engine[T]) { e.maxTreeSize = n }
}

// WithLogger overrides the engine's logger (default: mcts.defaultLogger).
func WithLogger[T MoveLike](l zerolog.Logger) Option[T] {
	return func(e *Engine[T]) { e.log = l }
}

// NewEngine builds the root node from initialState and spends
// initialBudget searching from it: the initial time budget is larger
// than per-move budgets to amortize the zero-information startup.
func NewEngine[T MoveLike](initialState GameState[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		pool:             SharedWorkerPool(),
		ownsPool:         false,
		batchSize:        DefaultBatchSize,
		explorationParam: DefaultExplorationParam,
		initialBudget:    DefaultInitialBudget,
		moveBudget:       DefaultMoveBudget,
		engineRand:       rand.New(rand.NewSource(SeedGeneratorFn())),
		log:              defaultLogger,
	}

	for _, opt := range opts {
		opt(e)
	}
	e.sim = NewSimulator[T](e.pool, e.batchSize)

	terminal := isTerminalState[T](initialState)
	e.root = NewRootNode(initialState, terminal)
	e.size = 1
	e.cursor = e.root

	e.log.Info().Dur("budget", e.initialBudget).Msg("starting initial search")
	e.search(e.root, e.initialBudget)
	return e
}

// OpponentMove records the opponent's move: it ensures the cursor is
// expanded, locates the matching child, and spends moveBudget searching
// from it. Returns ErrIllegalMove if no child matches.
func (e *Engine[T]) OpponentMove(move T) error {
	if !e.cursor.Expanded() {
		if _, err := e.cursor.ChooseChild(e.sim, NewRNG(e.engineRand), e.explorationParam, e.maxTreeSize, &e.size); err != nil {
			return err
		}
	}

	child := e.cursor.FindChild(func(m T) bool { return m == move })
	if child == nil {
		e.log.Warn().Interface("move", move).Msg("rejected illegal opponent move")
		return ErrIllegalMove
	}

	e.log.Info().Dur("budget", e.moveBudget).Msg("starting per-move search")
	e.search(child, e.moveBudget)
	return nil
}

// GetAIMove returns the move that led into the cursor's current node,
// i.e. the AI's chosen continuation.
func (e *Engine[T]) GetAIMove() T {
	return e.cursor.Move
}

// Root exposes the tree's root, mainly for tests and diagnostics.
func (e *Engine[T]) Root() *NodeBase[T] { return e.root }

// Cursor exposes the engine's current position in the tree.
func (e *Engine[T]) Cursor() *NodeBase[T] { return e.cursor }

// Close tears down the engine's worker pool if it owns one; engines
// built against SharedWorkerPool (the default) leave the process-wide
// pool running, torn down at process exit rather than per-engine.
func (e *Engine[T]) Close() {
	if e.ownsPool {
		e.pool.Shutdown()
	}
}

// search repeatedly calls node.ChooseChild until the monotonic clock
// passes the deadline, then updates the cursor to the node the final
// iteration settled on.
func (e *Engine[T]) search(node *NodeBase[T], budget time.Duration) {
	dl := newDeadline(budget)
	settled := node

	for !dl.passed() {
		next, err := node.ChooseChild(e.sim, NewRNG(e.engineRand), e.explorationParam, e.maxTreeSize, &e.size)
		if err != nil {
			e.log.Error().Err(err).Msg("search iteration aborted")
			break
		}
		settled = next
	}

	e.cursor = settled
}
