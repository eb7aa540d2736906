package model

import (
	"image"
	"testing"
	"time"
)

func gray(v byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestMonitorModel_FrameSequence(t *testing.T) {
	m := NewMonitorModel()
	if f, seq := m.Frame(); f != nil || seq != 0 {
		t.Fatalf("fresh model should be empty")
	}
	a := gray(1)
	m.SetFrame(a)
	f, seq := m.Frame()
	if f != a || seq != 1 {
		t.Fatalf("expected frame a with seq 1, got seq %d", seq)
	}
	b := gray(2)
	m.SetFrame(b)
	f, seq = m.Frame()
	if f != b || seq != 2 {
		t.Fatalf("expected frame b with seq 2, got seq %d", seq)
	}
}

func TestMonitorModel_NilFrameIgnored(t *testing.T) {
	m := NewMonitorModel()
	m.SetFrame(gray(1))
	m.SetFrame(nil)
	if _, seq := m.Frame(); seq != 1 {
		t.Fatalf("nil frame must not advance the sequence, got %d", seq)
	}
}

func TestMonitorModel_AlertBookkeeping(t *testing.T) {
	m := NewMonitorModel()
	if f, _, _, seq := m.Alert(); f != nil || seq != 0 {
		t.Fatalf("fresh model should have no alert")
	}
	at := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	frame := gray(9)
	m.SetAlert(frame, 0.25, at)
	f, score, gotAt, seq := m.Alert()
	if f != frame || score != 0.25 || !gotAt.Equal(at) || seq != 1 {
		t.Fatalf("alert mismatch: score %v at %v seq %d", score, gotAt, seq)
	}
	if m.Alerts() != 1 {
		t.Fatalf("expected 1 alert, got %d", m.Alerts())
	}
	m.SetAlert(gray(10), 0.5, at.Add(time.Second))
	if m.Alerts() != 2 {
		t.Fatalf("expected 2 alerts, got %d", m.Alerts())
	}
}
