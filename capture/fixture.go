package capture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/d-becker/raspberry/domain/motion"
)

// Fixture replays a fixed, ordered collection of pre-loaded frames and wraps
// back to the first after the last. The cursor is mutated only by Capture;
// the image slice itself is never modified after construction.
type Fixture struct {
	images []image.Image
	index  int
}

// NewFixture builds a fixture source over the given frames, starting at
// index start (modulo the frame count).
func NewFixture(images []image.Image, start int) (*Fixture, error) {
	if len(images) == 0 {
		return nil, errors.New("fixture: no images")
	}
	if start < 0 {
		start = 0
	}
	return &Fixture{images: images, index: start % len(images)}, nil
}

// LoadFixture reads every decodable image under dir, ordered by numeric-aware
// file name, and returns a fixture source over them.
func LoadFixture(dir string, start int) (*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	imgs := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("fixture: decode %s: %w", name, err)
		}
		imgs = append(imgs, img)
	}
	return NewFixture(imgs, start)
}

// Len returns the number of frames in the loop.
func (f *Fixture) Len() int { return len(f.images) }

// Index returns the index of the frame the next Capture call will return.
func (f *Fixture) Index() int { return f.index }

// Capture returns the frame at the cursor and advances it, wrapping to the
// start after the last frame.
func (f *Fixture) Capture() (image.Image, error) {
	img := f.images[f.index]
	f.index = (f.index + 1) % len(f.images)
	return img, nil
}

// naturalLess orders names so that embedded numbers compare numerically:
// picture_2.jpg sorts before picture_10.jpg.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, db := leadingDigits(a), leadingDigits(b)
		if da > 0 && db > 0 {
			na, nb := a[:da], b[:db]
			ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			a, b = a[da:], b[db:]
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

var _ motion.FrameSource = (*Fixture)(nil)
