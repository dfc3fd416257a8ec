package mcts

import "sync"

var (
	sharedPoolOnce sync.Once
	sharedPool     *WorkerPool
)

// SharedWorkerPool returns the process-wide worker pool, created on
// first use and torn down at process exit. Engines that don't receive
// WithWorkerPool use this by default.
func SharedWorkerPool() *WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = NewWorkerPool()
	})
	return sharedPool
}

// ShutdownSharedWorkerPool tears down the process-wide pool. Call it at
// process exit (or between test runs that need isolation); it is safe to
// call even if the shared pool was never created.
func ShutdownSharedWorkerPool() {
	if sharedPool != nil {
		sharedPool.Shutdown()
	}
}
