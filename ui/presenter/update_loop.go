package presenter

import "time"

// Loop aggregates feature presenters and drives periodic UI updates from the
// Tk event loop. The scheduler callback re-arms the next tick. The zero value
// is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Frames   *FramePresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, frames *FramePresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Frames: frames, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Frames != nil {
		l.Frames.ProcessFrame()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
