// Package schedule drives the capture cycle at a fixed cadence. Ticks are
// strictly sequential: the next delay is only computed after the previous
// tick has run to completion.
package schedule

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/d-becker/raspberry/domain/motion"
)

// Clock abstracts wall-clock access so the drift-correction logic can be
// tested without real sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// TickFunc is invoked once per tick with the time the tick started.
type TickFunc func(now time.Time) error

// Runner invokes a tick callback periodically in one of two disciplines:
//
//   - fixed-delay: sleep the full interval after each tick completes; the
//     schedule drifts by the tick's processing time, which is acceptable.
//   - aligned: before each tick, sleep until the next wall-clock multiple of
//     the interval. The target is recomputed from a fresh Now() every cycle
//     so variable processing time never compounds into drift.
//
// At most one tick is ever in flight: the loop runs on a single goroutine.
type Runner struct {
	interval time.Duration
	align    bool
	clock    Clock
	tick     TickFunc
	logger   *slog.Logger
	running  atomic.Bool
}

// NewRunner builds a runner. A nil clock selects the system clock; a
// non-positive interval defaults to one second.
func NewRunner(interval time.Duration, align bool, clock Clock, tick TickFunc, logger *slog.Logger) *Runner {
	if clock == nil {
		clock = systemClock{}
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{interval: interval, align: align, clock: clock, tick: tick, logger: logger}
}

// Running reports whether the run loop is active.
func (r *Runner) Running() bool { return r.running.Load() }

// Start launches Run on its own goroutine. Fatal tick errors are logged; use
// the blocking Run directly when the caller wants the error.
func (r *Runner) Start() {
	if r.running.Load() {
		return
	}
	go func() {
		if err := r.Run(); err != nil && r.logger != nil {
			r.logger.Error("monitor halted", "error", err)
		}
	}()
}

// Stop ends the run loop after the tick or sleep currently in progress.
// An in-flight tick is never interrupted.
func (r *Runner) Stop() { r.running.Store(false) }

// Run ticks immediately, then repeats until Stop is called or a tick fails
// fatally. Transient capture failures are logged and retried on the next
// scheduled tick; every other error stops the loop and is returned.
func (r *Runner) Run() error {
	if !r.running.CompareAndSwap(false, true) {
		return nil
	}
	defer r.running.Store(false)

	if err := r.runTick(); err != nil {
		return err
	}
	for r.running.Load() {
		r.clock.Sleep(r.nextDelay(r.clock.Now()))
		if !r.running.Load() {
			break
		}
		if err := r.runTick(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runTick() error {
	now := r.clock.Now()
	err := r.tick(now)
	switch {
	case err == nil:
		return nil
	case motion.IsTransient(err):
		if r.logger != nil {
			r.logger.Warn("tick skipped", "error", err)
		}
		return nil
	default:
		return err
	}
}

// nextDelay computes how long to sleep before the next tick, given the time
// the previous tick finished.
func (r *Runner) nextDelay(now time.Time) time.Duration {
	if !r.align {
		return r.interval
	}
	target := now.Truncate(r.interval).Add(r.interval)
	return target.Sub(now)
}
