package mcts

import "time"

// deadline wraps a monotonic end time, trimmed to what Engine.search
// needs: a single check of "has the budget elapsed".
type deadline struct {
	end time.Time
}

func newDeadline(budget time.Duration) deadline {
	return deadline{end: time.Now().Add(budget)}
}

func (d deadline) passed() bool {
	return time.Now().After(d.end)
}
