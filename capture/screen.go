package capture

import (
	"image"

	"github.com/vova616/screenshot"

	"github.com/d-becker/raspberry/domain/motion"
)

// Screen grabs the active desktop, monitoring the screen instead of a camera.
type Screen struct{}

func NewScreen() *Screen { return &Screen{} }

// Capture returns a screenshot of the current active monitor.
func (s *Screen) Capture() (image.Image, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

var _ motion.FrameSource = (*Screen)(nil)
