package presenter

import (
	"testing"

	"github.com/d-becker/raspberry/ui/model"
)

type fakeLifecycle struct {
	starts, stops int
}

func (f *fakeLifecycle) Start() { f.starts++ }
func (f *fakeLifecycle) Stop()  { f.stops++ }

type fakeStatusView struct {
	statuses []string
}

func (f *fakeStatusView) SetStatus(text string) { f.statuses = append(f.statuses, text) }

func TestRunPresenter_EnableStartsOnce(t *testing.T) {
	m := &model.RunModel{}
	lc := &fakeLifecycle{}
	v := &fakeStatusView{}
	p := NewRunPresenter(m, lc, v)

	p.Enable()
	p.Enable()
	if lc.starts != 1 {
		t.Fatalf("expected 1 start, got %d", lc.starts)
	}
	if !m.Active() {
		t.Fatalf("model should be active after enable")
	}
	if len(v.statuses) != 1 || v.statuses[0] != "monitoring" {
		t.Fatalf("unexpected statuses %v", v.statuses)
	}
}

func TestRunPresenter_DisableRequiresActive(t *testing.T) {
	m := &model.RunModel{}
	lc := &fakeLifecycle{}
	p := NewRunPresenter(m, lc, &fakeStatusView{})

	p.Disable()
	if lc.stops != 0 {
		t.Fatalf("disable on a stopped monitor must be a no-op")
	}
	p.Enable()
	p.Disable()
	if lc.stops != 1 || m.Active() {
		t.Fatalf("expected stopped state, stops=%d active=%v", lc.stops, m.Active())
	}
}

func TestRunPresenter_ToggleFlips(t *testing.T) {
	m := &model.RunModel{}
	lc := &fakeLifecycle{}
	p := NewRunPresenter(m, lc, &fakeStatusView{})

	p.Toggle()
	p.Toggle()
	p.Toggle()
	if lc.starts != 2 || lc.stops != 1 {
		t.Fatalf("expected 2 starts and 1 stop, got %d/%d", lc.starts, lc.stops)
	}
}
