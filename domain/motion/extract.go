package motion

import (
	"fmt"
	"image"
)

// Extractor crops raw frames to a fixed region of interest and reduces them
// to a single 8-bit intensity channel. Extraction is pure: identical inputs
// always yield identical output and the input image is never modified.
type Extractor struct {
	region image.Rectangle
}

// NewExtractor validates the region shape (left < right, top < bottom).
// Containment in the source frame is checked on every Extract call, since the
// frame size is not known until capture time.
func NewExtractor(region image.Rectangle) (*Extractor, error) {
	if region.Empty() {
		return nil, fmt.Errorf("%w: empty box %v", ErrInvalidRegion, region)
	}
	return &Extractor{region: region}, nil
}

// Region returns the configured crop box.
func (e *Extractor) Region() image.Rectangle { return e.region }

// Extract crops raw to the region and converts it to grayscale using the
// integer luma weights (77r + 150g + 29b) >> 8. The returned frame has its
// origin at (0, 0).
func (e *Extractor) Extract(raw image.Image) (*image.Gray, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidRegion)
	}
	b := raw.Bounds()
	if !e.region.In(b) {
		return nil, fmt.Errorf("%w: box %v, frame %v", ErrInvalidRegion, e.region, b)
	}
	w, h := e.region.Dx(), e.region.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	switch src := raw.(type) {
	case *image.Gray:
		// Already single-channel: the luma weights sum to 256, so the
		// conversion is the identity. Copy rows directly.
		for y := 0; y < h; y++ {
			so := src.PixOffset(e.region.Min.X, e.region.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+w], src.Pix[so:so+w])
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			so := src.PixOffset(e.region.Min.X, e.region.Min.Y+y)
			row := src.Pix[so : so+w*4]
			do := y * out.Stride
			for x := 0; x < w; x++ {
				i := x * 4
				r, g, bl := row[i], row[i+1], row[i+2]
				out.Pix[do+x] = byte((77*uint32(r) + 150*uint32(g) + 29*uint32(bl)) >> 8)
			}
		}
	default:
		for y := 0; y < h; y++ {
			do := y * out.Stride
			for x := 0; x < w; x++ {
				r, g, bl, _ := raw.At(e.region.Min.X+x, e.region.Min.Y+y).RGBA()
				out.Pix[do+x] = byte((77*(r>>8) + 150*(g>>8) + 29*(bl>>8)) >> 8)
			}
		}
	}
	return out, nil
}
