//go:build !linux

package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/d-becker/raspberry/domain/motion"
)

// Webcam is only available on linux (V4L2). OpenWebcam always fails here and
// Open falls back to the fixture source.
type Webcam struct{}

func OpenWebcam(device string) (*Webcam, error) {
	return nil, fmt.Errorf("camera source requires linux (V4L2), device %s unavailable", device)
}

func (c *Webcam) Capture() (image.Image, error) {
	return nil, errors.New("camera source requires linux")
}

// Close is a no-op on non-linux platforms.
func (c *Webcam) Close() error { return nil }

var _ motion.FrameSource = (*Webcam)(nil)
