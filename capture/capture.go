// Package capture provides the frame source implementations behind the
// motion core: a live V4L2 camera, a desktop screen grabber and a looping
// fixture feed over pre-captured sample images.
package capture

import (
	"fmt"
	"log/slog"

	"github.com/d-becker/raspberry/config"
	"github.com/d-becker/raspberry/domain/motion"
)

// Open constructs the frame source named by cfg.Source. The variant is
// selected once at startup and never switched at runtime.
//
// When the live camera cannot be opened, Open falls back to the fixture
// source with a warning so the monitor stays usable off-device.
func Open(cfg *config.Config, logger *slog.Logger) (motion.FrameSource, error) {
	var src motion.FrameSource
	switch cfg.Source {
	case config.SourceScreen:
		src = NewScreen()
	case config.SourceFixture:
		fix, err := LoadFixture(cfg.FixtureDir, cfg.FixtureStart)
		if err != nil {
			return nil, err
		}
		src = fix
	case config.SourceCamera:
		cam, err := OpenWebcam(cfg.Device)
		if err != nil {
			if logger != nil {
				logger.Warn("camera unavailable, falling back to fixture source", "device", cfg.Device, "error", err)
			}
			fix, ferr := LoadFixture(cfg.FixtureDir, cfg.FixtureStart)
			if ferr != nil {
				return nil, fmt.Errorf("open camera %s: %w (fixture fallback: %v)", cfg.Device, err, ferr)
			}
			src = fix
		} else {
			src = cam
		}
	default:
		return nil, fmt.Errorf("unknown frame source %q", cfg.Source)
	}

	if cfg.Rotate180 {
		src = NewRotated(src)
	}
	return src, nil
}
