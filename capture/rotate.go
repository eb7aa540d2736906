package capture

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/d-becker/raspberry/domain/motion"
)

// Rotated flips every captured frame by 180 degrees, for cameras mounted
// upside down.
type Rotated struct {
	src motion.FrameSource
}

func NewRotated(src motion.FrameSource) *Rotated { return &Rotated{src: src} }

func (r *Rotated) Capture() (image.Image, error) {
	img, err := r.src.Capture()
	if err != nil {
		return nil, err
	}
	return imaging.Rotate180(img), nil
}

var _ motion.FrameSource = (*Rotated)(nil)
