package model

import "sync/atomic"

// RunModel tracks whether the monitor runner is active. The zero value is
// stopped and usable. Atomic because UI callbacks and presenter ticks may race.
type RunModel struct{ active atomic.Bool }

// Active reports whether monitoring is currently running.
func (m *RunModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the running flag.
func (m *RunModel) SetActive(b bool) {
	if m == nil {
		return
	}
	m.active.Store(b)
}
