package mcts

import (
	"math/rand"
	"time"
)

// DefaultExplorationParam is the UCB1 exploration constant C. sqrt(2) is
// the textbook value; it is exposed as a variable (rather than a
// constant) because the right value is tuned per-game.
var DefaultExplorationParam = 1.41421356237

// SetExplorationParam changes the package-wide default used by new
// engines that don't pass WithExplorationParam explicitly.
func SetExplorationParam(c float64) {
	DefaultExplorationParam = max(0.0, c)
}

// SeedGeneratorFn produces the seed handed to each worker's thread-local
// RNG. Overridable so tests can make playouts deterministic.
var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// SetSeedGeneratorFn installs a custom seed generator, used by tests that
// need reproducible rollouts.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// DefaultBatchSize is the number of independent playouts a single call to
// Simulator.Run fans out, chosen to amortize worker-pool scheduling
// overhead.
const DefaultBatchSize = 8

// randAdapter lets a *rand.Rand satisfy the narrow RNG interface used by
// GameState implementations.
type randAdapter struct{ r *rand.Rand }

func NewRNG(r *rand.Rand) RNG { return randAdapter{r} }

func (a randAdapter) Intn(n int) int { return a.r.Intn(n) }
