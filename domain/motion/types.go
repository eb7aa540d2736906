package motion

import (
	"image"
)

// FrameSource produces a raw frame on demand. Implementations live in the
// capture package; the detection core only depends on this capability.
type FrameSource interface {
	Capture() (image.Image, error)
}

// DisplayPresenter receives the current processed frame once per successful
// tick. Notifications are fire-and-forget; the core consumes no return value.
type DisplayPresenter interface {
	UpdateFrame(frame *image.Gray)
}

// AlertPresenter is notified when the difference score between the previous
// and current frame crosses the motion threshold. The presentation layer
// decides how (and for how long) the alert is shown.
type AlertPresenter interface {
	NotifyMotion(frame *image.Gray, score float64)
}

// Box builds the region of interest from its four edge coordinates
// (left, top, right, bottom).
func Box(left, top, right, bottom int) image.Rectangle {
	return image.Rect(left, top, right, bottom)
}
