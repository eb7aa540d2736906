package motion

import "errors"

// ErrInvalidRegion reports a region of interest that does not fit the frames
// produced by the source. The region is static configuration, so this can
// never succeed on retry and is fatal.
var ErrInvalidRegion = errors.New("region of interest outside frame bounds")

// ErrDimensionMismatch reports that the two frames handed to the scorer have
// different dimensions. With a fixed region this means a broken precondition
// (the source changed size mid-run) and is fatal.
var ErrDimensionMismatch = errors.New("frame dimensions differ")

// CaptureError wraps a transient frame-acquisition failure. A tick that fails
// with a CaptureError is skipped; the next scheduled tick retries normally.
type CaptureError struct {
	Err error
}

func (e *CaptureError) Error() string { return "capture: " + e.Err.Error() }

func (e *CaptureError) Unwrap() error { return e.Err }

// IsTransient reports whether err may resolve on its own by the next tick.
// Only capture failures qualify; every other cycle error is fatal.
func IsTransient(err error) bool {
	var ce *CaptureError
	return errors.As(err, &ce)
}
