package config

import (
	"encoding/json"
	"image"
	"os"
	"time"
)

// Frame source selection values for Config.Source.
const (
	SourceCamera  = "camera"
	SourceScreen  = "screen"
	SourceFixture = "fixture"
)

// Config holds runtime configuration for the motion monitor.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool `json:"debug"`
	Headless bool `json:"headless"`

	// Frame source
	Source       string `json:"source"`        // camera | screen | fixture
	Device       string `json:"device"`        // V4L2 device for the camera source
	FixtureDir   string `json:"fixture_dir"`   // sample images for the fixture source
	FixtureStart int    `json:"fixture_start"` // first fixture index; skips initial still frames
	Rotate180    bool   `json:"rotate_180"`    // for cameras mounted upside down

	// Region of interest (left, top, right, bottom)
	BoxLeft   int `json:"box_left"`
	BoxTop    int `json:"box_top"`
	BoxRight  int `json:"box_right"`
	BoxBottom int `json:"box_bottom"`

	// Detection parameters
	PixelThreshold  int     `json:"pixel_threshold"`  // per-pixel intensity cutoff, 0-255
	MotionThreshold float64 `json:"motion_threshold"` // aggregate score cutoff
	ScoreMode       string  `json:"score_mode"`       // mean | sum

	// Scheduling
	IntervalSeconds float64 `json:"interval_seconds"`
	AlignTicks      bool    `json:"align_ticks"` // land ticks on wall-clock boundaries
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Headless:        false,
		Source:          SourceCamera,
		Device:          "/dev/video0",
		FixtureDir:      "samples",
		FixtureStart:    15,
		Rotate180:       true,
		BoxLeft:         450,
		BoxTop:          170,
		BoxRight:        740,
		BoxBottom:       410,
		PixelThreshold:  10,
		MotionThreshold: 0.015,
		ScoreMode:       "mean",
		IntervalSeconds: 2,
		AlignTicks:      false,
	}
}

// Region returns the configured crop box as a rectangle.
func (c *Config) Region() image.Rectangle {
	return image.Rect(c.BoxLeft, c.BoxTop, c.BoxRight, c.BoxBottom)
}

// Interval returns the tick interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds * float64(time.Second))
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceCamera, SourceScreen, SourceFixture:
	default:
		c.Source = SourceCamera
	}
	if c.Device == "" {
		c.Device = "/dev/video0"
	}
	if c.FixtureDir == "" {
		c.FixtureDir = "samples"
	}
	if c.FixtureStart < 0 {
		c.FixtureStart = 0
	}
	if c.BoxLeft >= c.BoxRight || c.BoxTop >= c.BoxBottom {
		d := DefaultConfig()
		c.BoxLeft, c.BoxTop, c.BoxRight, c.BoxBottom = d.BoxLeft, d.BoxTop, d.BoxRight, d.BoxBottom
	}
	if c.PixelThreshold < 0 {
		c.PixelThreshold = 0
	}
	if c.PixelThreshold > 255 {
		c.PixelThreshold = 255
	}
	if c.MotionThreshold < 0 {
		c.MotionThreshold = 0
	}
	if c.ScoreMode != "mean" && c.ScoreMode != "sum" {
		c.ScoreMode = "mean"
	}
	if c.IntervalSeconds <= 0 {
		c.IntervalSeconds = 2
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
