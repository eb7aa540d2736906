package presenter

import (
	"image"
	"time"

	"github.com/d-becker/raspberry/ui/model"
)

// FrameView is the UI surface the presenter pushes frames into.
type FrameView interface {
	UpdateLive(img image.Image)
	UpdateAlert(img image.Image, score float64, at time.Time)
}

// FramePresenter pulls the latest monitor state from the model into the view.
// It runs on the Tk event loop tick and tracks sequence numbers so a pane is
// only redrawn when its content actually changed.
type FramePresenter struct {
	model *model.MonitorModel
	view  FrameView

	lastFrameSeq uint64
	lastAlertSeq uint64
}

func NewFramePresenter(m *model.MonitorModel, view FrameView) *FramePresenter {
	return &FramePresenter{model: m, view: view}
}

// ProcessFrame pushes any new live frame and any new alert to the view.
func (p *FramePresenter) ProcessFrame() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	if frame, seq := p.model.Frame(); frame != nil && seq != p.lastFrameSeq {
		p.lastFrameSeq = seq
		p.view.UpdateLive(frame)
	}
	if frame, score, at, seq := p.model.Alert(); frame != nil && seq != p.lastAlertSeq {
		p.lastAlertSeq = seq
		p.view.UpdateAlert(frame, score, at)
	}
}
