package presenter

import (
	"time"

	"github.com/d-becker/raspberry/ui/model"
)

// ActiveModel reports whether the monitor is running.
type ActiveModel interface{ Active() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter feeds the session model from the running state and pushes
// the resulting durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	run  ActiveModel
	view SessionView
}

func NewSessionPresenter(sess *model.SessionModel, run ActiveModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, run: run, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.run == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.run.Active(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
