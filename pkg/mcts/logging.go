package mcts

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger is the package-wide fallback logger, grounded on
// risk-agent's use of github.com/rs/zerolog/log for sparse, event-based
// diagnostics (search start/stop, pool teardown) rather than per-cycle
// tracing, which would dominate runtime cost in the hot search loop.
var defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
