package motion

import (
	"image"
	"log/slog"
	"time"
)

// State enumerates the phases of the capture cycle.
type State int

const (
	// StateEmpty: no frame processed yet. The first advance stores a frame
	// and can never raise an alert.
	StateEmpty State = iota
	// StateWarmed: exactly one frame processed, scoring starts next tick.
	StateWarmed
	// StateSteady: both window slots populated, every tick scores.
	StateSteady
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateWarmed:
		return "warmed"
	case StateSteady:
		return "steady"
	default:
		return "unknown"
	}
}

// Cycle owns the rolling pair of most recent processed frames and runs one
// capture -> extract -> score -> decide pass per Advance call.
//
// Not safe for concurrent use; the scheduler guarantees ticks are strictly
// sequential, so no locking is needed around the frame slots.
type Cycle struct {
	source    FrameSource
	extractor *Extractor
	scorer    *Scorer
	display   DisplayPresenter
	alert     AlertPresenter
	logger    *slog.Logger

	pixelThreshold  int
	motionThreshold float64

	state State
	prev  *image.Gray
	cur   *image.Gray
	ticks uint64
}

// NewCycle wires the cycle to its collaborators. display and alert may be nil
// when no presentation layer is attached (tests, probes).
func NewCycle(source FrameSource, extractor *Extractor, scorer *Scorer, display DisplayPresenter, alert AlertPresenter, pixelThreshold int, motionThreshold float64, logger *slog.Logger) *Cycle {
	return &Cycle{
		source:          source,
		extractor:       extractor,
		scorer:          scorer,
		display:         display,
		alert:           alert,
		logger:          logger,
		pixelThreshold:  pixelThreshold,
		motionThreshold: motionThreshold,
	}
}

// State returns the current cycle phase.
func (c *Cycle) State() State { return c.state }

// Previous returns the frame processed one tick ago, or nil.
func (c *Cycle) Previous() *image.Gray { return c.prev }

// Current returns the most recently processed frame, or nil.
func (c *Cycle) Current() *image.Gray { return c.cur }

// Ticks returns the number of successfully completed advances.
func (c *Cycle) Ticks() uint64 { return c.ticks }

// Advance runs one tick: capture a raw frame, extract the region of interest,
// slide the two-frame window, score against the previous frame and raise an
// alert when the score strictly exceeds the motion threshold.
//
// A capture failure aborts the tick before any state mutation and returns a
// transient *CaptureError; previous and current keep their prior values.
// Extraction and scoring failures are fatal and propagate to the caller.
func (c *Cycle) Advance(now time.Time) error {
	raw, err := c.source.Capture()
	if err != nil {
		return &CaptureError{Err: err}
	}
	next, err := c.extractor.Extract(raw)
	if err != nil {
		return err
	}

	c.prev = c.cur
	c.cur = next
	switch c.state {
	case StateEmpty:
		c.state = StateWarmed
	case StateWarmed:
		c.state = StateSteady
	}
	c.ticks++

	if c.display != nil {
		c.display.UpdateFrame(c.cur)
	}
	if c.prev == nil {
		// Startup transient: nothing to compare against, no alert possible.
		return nil
	}

	score, err := c.scorer.Score(c.prev, c.cur, c.pixelThreshold)
	if err != nil {
		return err
	}
	if c.logger != nil {
		c.logger.Debug("cycle tick", "state", c.state.String(), "score", score, "at", now)
	}
	if score > c.motionThreshold {
		if c.logger != nil {
			c.logger.Info("motion detected", "score", score, "threshold", c.motionThreshold)
		}
		if c.alert != nil {
			c.alert.NotifyMotion(c.cur, score)
		}
	}
	return nil
}
