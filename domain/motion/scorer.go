package motion

import (
	"fmt"
	"image"
)

// Mode selects how the per-pixel change mask is aggregated into a score.
type Mode int

const (
	// ModeMean scores the ratio of changed pixels to all pixels, in [0, 1].
	ModeMean Mode = iota
	// ModeSum scores the absolute count of changed pixels.
	ModeSum
)

func (m Mode) String() string {
	switch m {
	case ModeMean:
		return "mean"
	case ModeSum:
		return "sum"
	default:
		return "unknown"
	}
}

// ParseMode maps a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "mean":
		return ModeMean, nil
	case "sum":
		return ModeSum, nil
	default:
		return ModeMean, fmt.Errorf("unknown score mode %q", s)
	}
}

// Scorer reduces two equally sized intensity frames to a scalar difference
// score. Scoring is deterministic and symmetric in its frame arguments.
type Scorer struct {
	mode Mode
}

func NewScorer(mode Mode) *Scorer { return &Scorer{mode: mode} }

// Mode returns the configured aggregation mode.
func (s *Scorer) Mode() Mode { return s.mode }

// Score counts pixels whose absolute intensity difference strictly exceeds
// pixelThreshold. A pixel differing by exactly pixelThreshold does not count.
// Fails with ErrDimensionMismatch when the frames differ in size.
func (s *Scorer) Score(a, b *image.Gray, pixelThreshold int) (float64, error) {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	if bw, bh := b.Rect.Dx(), b.Rect.Dy(); bw != w || bh != h {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, w, h, bw, bh)
	}
	total := w * h
	if total == 0 {
		return 0, nil
	}
	changed := 0
	for y := 0; y < h; y++ {
		ra := a.Pix[y*a.Stride : y*a.Stride+w]
		rb := b.Pix[y*b.Stride : y*b.Stride+w]
		for x := 0; x < w; x++ {
			d := int(ra[x]) - int(rb[x])
			if d < 0 {
				d = -d
			}
			if d > pixelThreshold {
				changed++
			}
		}
	}
	if s.mode == ModeSum {
		return float64(changed), nil
	}
	return float64(changed) / float64(total), nil
}
