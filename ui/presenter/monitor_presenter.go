package presenter

import (
	"image"
	"log/slog"
	"time"

	"github.com/d-becker/raspberry/domain/motion"
	"github.com/d-becker/raspberry/ui/model"
)

// MonitorPresenter receives frame and alert notifications from the capture
// cycle and records them in the model for the UI tick to render. It runs on
// the monitor goroutine; the model handles the crossing to the Tk loop.
type MonitorPresenter struct {
	model  *model.MonitorModel
	logger *slog.Logger
}

func NewMonitorPresenter(m *model.MonitorModel, logger *slog.Logger) *MonitorPresenter {
	return &MonitorPresenter{model: m, logger: logger}
}

// UpdateFrame stores the current frame for the live pane.
func (p *MonitorPresenter) UpdateFrame(f *image.Gray) {
	if p == nil || f == nil {
		return
	}
	p.model.SetFrame(f)
	if p.logger != nil {
		p.logger.Debug("frame updated", "w", f.Rect.Dx(), "h", f.Rect.Dy())
	}
}

// NotifyMotion stores the alert frame and score for the alert pane.
func (p *MonitorPresenter) NotifyMotion(f *image.Gray, score float64) {
	if p == nil || f == nil {
		return
	}
	p.model.SetAlert(f, score, time.Now())
	if p.logger != nil {
		p.logger.Info("motion alert", "score", score)
	}
}

var (
	_ motion.DisplayPresenter = (*MonitorPresenter)(nil)
	_ motion.AlertPresenter   = (*MonitorPresenter)(nil)
)

// LogPresenter reports frame updates and alerts to the logger only; it backs
// headless runs where no window exists.
type LogPresenter struct {
	logger *slog.Logger
}

func NewLogPresenter(logger *slog.Logger) *LogPresenter { return &LogPresenter{logger: logger} }

func (p *LogPresenter) UpdateFrame(f *image.Gray) {
	if p == nil || p.logger == nil || f == nil {
		return
	}
	p.logger.Debug("image updated", "w", f.Rect.Dx(), "h", f.Rect.Dy())
}

func (p *LogPresenter) NotifyMotion(f *image.Gray, score float64) {
	if p == nil || p.logger == nil {
		return
	}
	p.logger.Info("motion detected", "score", score)
}

var (
	_ motion.DisplayPresenter = (*LogPresenter)(nil)
	_ motion.AlertPresenter   = (*LogPresenter)(nil)
)
