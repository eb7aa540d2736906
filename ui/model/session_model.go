package model

import (
	"time"
)

// SessionModel tracks how long the monitor has been running in the current
// session and the time accumulated across sessions. It is decoupled from the
// UI; presenters poll Values() and push to views. The zero value is ready.
type SessionModel struct {
	active      bool
	startedAt   time.Time
	session     time.Duration
	accumulated time.Duration
}

func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model from the current running state and timestamp.
// Call periodically, for example from a presenter tick.
func (m *SessionModel) OnTick(running bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case running && !m.active:
		m.active = true
		m.startedAt = now
		m.session = 0
	case running:
		m.session = now.Sub(m.startedAt)
	case m.active:
		m.session = now.Sub(m.startedAt)
		m.accumulated += m.session
		m.active = false
	}
}

// Values returns the current session duration and the total across sessions,
// including the ongoing one while active.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.session
	total = m.accumulated
	if m.active {
		total += session
	}
	return session, total
}
