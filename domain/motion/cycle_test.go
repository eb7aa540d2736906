package motion

import (
	"bytes"
	"errors"
	"image"
	"testing"
	"time"
)

// stubSource replays a scripted sequence of frames and errors.
type stubSource struct {
	frames []image.Image
	errs   []error
	calls  int
}

func (s *stubSource) Capture() (image.Image, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.frames) {
		return s.frames[i], nil
	}
	return s.frames[len(s.frames)-1], nil
}

// recorder captures presenter notifications.
type recorder struct {
	updates []*image.Gray
	alerts  []float64
}

func (r *recorder) UpdateFrame(f *image.Gray) { r.updates = append(r.updates, f) }

func (r *recorder) NotifyMotion(f *image.Gray, s float64) { r.alerts = append(r.alerts, s) }

func newTestCycle(src FrameSource, rec *recorder, region image.Rectangle, pixelThreshold int, motionThreshold float64) *Cycle {
	e, err := NewExtractor(region)
	if err != nil {
		panic(err)
	}
	return NewCycle(src, e, NewScorer(ModeMean), rec, rec, pixelThreshold, motionThreshold, nil)
}

func advance(t *testing.T, c *Cycle) {
	t.Helper()
	if err := c.Advance(time.Now()); err != nil {
		t.Fatalf("advance: %v", err)
	}
}

func TestCycle_FirstAdvanceNeverAlerts(t *testing.T) {
	// Content wildly different from anything does not matter on the first
	// tick: there is no previous frame to compare against.
	src := &stubSource{frames: []image.Image{rgbaFrame(4, 4, 255, 255, 255)}}
	rec := &recorder{}
	c := newTestCycle(src, rec, image.Rect(0, 0, 4, 4), 10, 0.0)

	advance(t, c)
	if len(rec.alerts) != 0 {
		t.Fatalf("first advance raised an alert")
	}
	if len(rec.updates) != 1 {
		t.Fatalf("expected 1 display update, got %d", len(rec.updates))
	}
	if c.State() != StateWarmed {
		t.Fatalf("expected warmed state, got %v", c.State())
	}
	if c.Previous() != nil {
		t.Fatalf("previous should be empty after first advance")
	}
}

func TestCycle_SlidingWindow(t *testing.T) {
	frames := []image.Image{
		rgbaFrame(4, 4, 10, 10, 10),
		rgbaFrame(4, 4, 20, 20, 20),
		rgbaFrame(4, 4, 30, 30, 30),
		rgbaFrame(4, 4, 40, 40, 40),
	}
	src := &stubSource{frames: frames}
	rec := &recorder{}
	c := newTestCycle(src, rec, image.Rect(0, 0, 4, 4), 255, 1e9)

	for i := range frames {
		advance(t, c)
		if c.Current() == nil {
			t.Fatalf("tick %d: current empty", i)
		}
	}
	if c.State() != StateSteady {
		t.Fatalf("expected steady state, got %v", c.State())
	}
	// previous must equal the (N-1)-th processed frame, current the N-th
	if c.Previous().Pix[0] != 30 {
		t.Fatalf("previous holds intensity %d, want 30", c.Previous().Pix[0])
	}
	if c.Current().Pix[0] != 40 {
		t.Fatalf("current holds intensity %d, want 40", c.Current().Pix[0])
	}
	if c.Ticks() != 4 {
		t.Fatalf("expected 4 ticks, got %d", c.Ticks())
	}
}

func TestCycle_NoMotionBelowThreshold(t *testing.T) {
	// Two all-zero frames: score 0, and 0 > 0.0 is false, so no alert.
	src := &stubSource{frames: []image.Image{
		rgbaFrame(4, 4, 0, 0, 0),
		rgbaFrame(4, 4, 0, 0, 0),
	}}
	rec := &recorder{}
	c := newTestCycle(src, rec, image.Rect(0, 0, 4, 4), 10, 0.0)

	advance(t, c)
	advance(t, c)
	if len(rec.alerts) != 0 {
		t.Fatalf("expected no alert for identical frames, got %v", rec.alerts)
	}
	if len(rec.updates) != 2 {
		t.Fatalf("expected 2 display updates, got %d", len(rec.updates))
	}
}

func TestCycle_AlertOnFullChange(t *testing.T) {
	// All-zero frame followed by an all-white frame: every pixel changes,
	// mean score 1.0, which exceeds any threshold below 1.
	src := &stubSource{frames: []image.Image{
		rgbaFrame(4, 4, 0, 0, 0),
		rgbaFrame(4, 4, 255, 255, 255),
	}}
	rec := &recorder{}
	c := newTestCycle(src, rec, image.Rect(0, 0, 4, 4), 10, 0.5)

	advance(t, c)
	advance(t, c)
	if len(rec.alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(rec.alerts))
	}
	if rec.alerts[0] != 1.0 {
		t.Fatalf("expected score 1.0, got %v", rec.alerts[0])
	}
}

func TestCycle_CaptureErrorLeavesStateUntouched(t *testing.T) {
	src := &stubSource{
		frames: []image.Image{
			rgbaFrame(4, 4, 10, 10, 10),
			rgbaFrame(4, 4, 20, 20, 20),
			nil,
			rgbaFrame(4, 4, 30, 30, 30),
		},
		errs: []error{nil, nil, errors.New("device gone"), nil},
	}
	rec := &recorder{}
	c := newTestCycle(src, rec, image.Rect(0, 0, 4, 4), 255, 1e9)

	advance(t, c)
	advance(t, c)
	prevBefore, curBefore := c.Previous(), c.Current()
	prevPix := append([]byte(nil), prevBefore.Pix...)
	curPix := append([]byte(nil), curBefore.Pix...)
	stateBefore, ticksBefore := c.State(), c.Ticks()

	err := c.Advance(time.Now())
	if err == nil {
		t.Fatalf("expected capture error")
	}
	if !IsTransient(err) {
		t.Fatalf("capture failure should be transient, got %v", err)
	}
	var ce *CaptureError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CaptureError, got %T", err)
	}

	if c.Previous() != prevBefore || c.Current() != curBefore {
		t.Fatalf("frame slots changed on a failed tick")
	}
	if !bytes.Equal(c.Previous().Pix, prevPix) || !bytes.Equal(c.Current().Pix, curPix) {
		t.Fatalf("frame contents changed on a failed tick")
	}
	if c.State() != stateBefore || c.Ticks() != ticksBefore {
		t.Fatalf("cycle bookkeeping changed on a failed tick")
	}

	// The next tick retries normally.
	advance(t, c)
	if c.Current().Pix[0] != 30 {
		t.Fatalf("retry tick did not process the next frame")
	}
}

func TestCycle_InvalidRegionIsFatal(t *testing.T) {
	src := &stubSource{frames: []image.Image{rgbaFrame(4, 4, 0, 0, 0)}}
	c := newTestCycle(src, &recorder{}, image.Rect(0, 0, 100, 100), 10, 0.0)

	err := c.Advance(time.Now())
	if !errors.Is(err, ErrInvalidRegion) {
		t.Fatalf("expected ErrInvalidRegion, got %v", err)
	}
	if IsTransient(err) {
		t.Fatalf("region errors must not be treated as transient")
	}
	if c.State() != StateEmpty || c.Current() != nil {
		t.Fatalf("state mutated on fatal extraction error")
	}
}

func TestCycle_StateProgression(t *testing.T) {
	src := &stubSource{frames: []image.Image{rgbaFrame(2, 2, 0, 0, 0)}}
	c := newTestCycle(src, &recorder{}, image.Rect(0, 0, 2, 2), 10, 1e9)

	if c.State() != StateEmpty {
		t.Fatalf("new cycle should be empty, got %v", c.State())
	}
	advance(t, c)
	if c.State() != StateWarmed {
		t.Fatalf("after one advance expected warmed, got %v", c.State())
	}
	advance(t, c)
	if c.State() != StateSteady {
		t.Fatalf("after two advances expected steady, got %v", c.State())
	}
	advance(t, c)
	if c.State() != StateSteady {
		t.Fatalf("steady must persist, got %v", c.State())
	}
}

func TestCycle_SumModeAlert(t *testing.T) {
	e, err := NewExtractor(image.Rect(0, 0, 4, 4))
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}
	src := &stubSource{frames: []image.Image{
		rgbaFrame(4, 4, 0, 0, 0),
		rgbaFrame(4, 4, 255, 255, 255),
	}}
	rec := &recorder{}
	c := NewCycle(src, e, NewScorer(ModeSum), rec, rec, 10, 15, nil)

	advance(t, c)
	advance(t, c)
	if len(rec.alerts) != 1 || rec.alerts[0] != 16 {
		t.Fatalf("expected one alert with count 16, got %v", rec.alerts)
	}
}
