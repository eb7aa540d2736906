package model

import (
	"image"
	"sync"
	"time"
)

// MonitorModel holds the latest processed frame and the most recent motion
// alert. It bridges the monitor goroutine, which writes on every tick, and
// the Tk event loop, which polls during its UI tick; hence the mutex.
//
// Sequence numbers let the view skip photo updates when nothing changed.
type MonitorModel struct {
	mu sync.Mutex

	frame    *image.Gray
	frameSeq uint64

	alertFrame *image.Gray
	alertScore float64
	alertAt    time.Time
	alertSeq   uint64
}

func NewMonitorModel() *MonitorModel { return &MonitorModel{} }

// SetFrame records the frame shown in the live pane.
func (m *MonitorModel) SetFrame(f *image.Gray) {
	if m == nil || f == nil {
		return
	}
	m.mu.Lock()
	m.frame = f
	m.frameSeq++
	m.mu.Unlock()
}

// Frame returns the live frame and its sequence number.
func (m *MonitorModel) Frame() (*image.Gray, uint64) {
	if m == nil {
		return nil, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame, m.frameSeq
}

// SetAlert records a motion alert: the frame that triggered it, its score and
// the time it fired.
func (m *MonitorModel) SetAlert(f *image.Gray, score float64, at time.Time) {
	if m == nil || f == nil {
		return
	}
	m.mu.Lock()
	m.alertFrame = f
	m.alertScore = score
	m.alertAt = at
	m.alertSeq++
	m.mu.Unlock()
}

// Alert returns the latest alert frame, score, timestamp and sequence number.
// The frame is nil while no alert has fired.
func (m *MonitorModel) Alert() (f *image.Gray, score float64, at time.Time, seq uint64) {
	if m == nil {
		return nil, 0, time.Time{}, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alertFrame, m.alertScore, m.alertAt, m.alertSeq
}

// Alerts returns the number of alerts recorded so far.
func (m *MonitorModel) Alerts() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alertSeq
}
