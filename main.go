package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/d-becker/raspberry/capture"
	"github.com/d-becker/raspberry/config"
	"github.com/d-becker/raspberry/debug"
	"github.com/d-becker/raspberry/domain/motion"
	"github.com/d-becker/raspberry/schedule"
	"github.com/d-becker/raspberry/ui/model"
	"github.com/d-becker/raspberry/ui/presenter"
	"github.com/d-becker/raspberry/ui/view"
)

const uiTick = 250 * time.Millisecond

func main() {
	cfgPath := flag.String("config", "motioncam.json", "path to the JSON config file")
	mock := flag.Bool("mock", false, "use the looping fixture source with pre-captured images")
	source := flag.String("source", "", "frame source: camera, screen or fixture")
	device := flag.String("device", "", "V4L2 device for the camera source")
	fixtureDir := flag.String("fixture-dir", "", "directory with sample images for the fixture source")
	box := flag.String("box", "", "region of interest as left,top,right,bottom")
	pixel := flag.Int("pixel-threshold", 0, "intensity difference above which two pixels count as different (0-255)")
	motionThr := flag.Float64("motion-threshold", 0, "aggregate score above which motion is reported")
	mode := flag.String("mode", "", "score aggregation: mean (changed ratio) or sum (changed count)")
	interval := flag.Float64("interval", 0, "seconds between captures")
	align := flag.Bool("align", false, "align ticks to wall-clock boundaries")
	headless := flag.Bool("headless", false, "run without a window, reporting to the log only")
	dbg := flag.Bool("debug", false, "verbose logging and runtime metrics")
	flag.Parse()

	cfg, loadErr := config.Load(*cfgPath)
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mock":
			if *mock {
				cfg.Source = config.SourceFixture
			}
		case "source":
			cfg.Source = *source
		case "device":
			cfg.Device = *device
		case "fixture-dir":
			cfg.FixtureDir = *fixtureDir
		case "box":
			l, t, r, b, err := parseBox(*box)
			if err != nil {
				flagErr = err
				return
			}
			cfg.BoxLeft, cfg.BoxTop, cfg.BoxRight, cfg.BoxBottom = l, t, r, b
		case "pixel-threshold":
			cfg.PixelThreshold = *pixel
		case "motion-threshold":
			cfg.MotionThreshold = *motionThr
		case "mode":
			cfg.ScoreMode = *mode
		case "interval":
			cfg.IntervalSeconds = *interval
		case "align":
			cfg.AlignTicks = *align
		case "headless":
			cfg.Headless = *headless
		case "debug":
			cfg.Debug = *dbg
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, flagErr)
		os.Exit(2)
	}
	_ = cfg.Validate()

	logger := NewLogger(cfg.Debug)
	if loadErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", loadErr)
	}
	if cfg.Debug {
		debug.StartMetricsLogger(5*time.Second, logger)
	}

	extractor, err := motion.NewExtractor(cfg.Region())
	if err != nil {
		fatal(logger, "invalid region of interest", err)
	}
	scoreMode, err := motion.ParseMode(cfg.ScoreMode)
	if err != nil {
		fatal(logger, "invalid score mode", err)
	}
	scorer := motion.NewScorer(scoreMode)

	src, err := capture.Open(cfg, logger)
	if err != nil {
		fatal(logger, "open frame source", err)
	}
	logger.Info("monitor configured",
		"source", cfg.Source,
		"box", cfg.Region().String(),
		"pixel_threshold", cfg.PixelThreshold,
		"motion_threshold", cfg.MotionThreshold,
		"mode", scoreMode.String(),
		"interval", cfg.Interval(),
		"align", cfg.AlignTicks,
	)

	if cfg.Headless {
		runHeadless(cfg, logger, src, extractor, scorer)
		return
	}
	runWindowed(cfg, logger, src, extractor, scorer)
}

// runHeadless drives the capture cycle on the calling goroutine until a
// signal or a fatal cycle error stops it.
func runHeadless(cfg *config.Config, logger *slog.Logger, src motion.FrameSource, extractor *motion.Extractor, scorer *motion.Scorer) {
	pres := presenter.NewLogPresenter(logger)
	cycle := motion.NewCycle(src, extractor, scorer, pres, pres, cfg.PixelThreshold, cfg.MotionThreshold, logger)
	runner := schedule.NewRunner(cfg.Interval(), cfg.AlignTicks, nil, cycle.Advance, logger)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("shutting down")
		runner.Stop()
	}()

	if err := runner.Run(); err != nil {
		fatal(logger, "monitor halted", err)
	}
}

// runWindowed runs the capture cycle on the scheduler goroutine and the Tk
// main loop on the calling one, bridged through the monitor model.
func runWindowed(cfg *config.Config, logger *slog.Logger, src motion.FrameSource, extractor *motion.Extractor, scorer *motion.Scorer) {
	monModel := model.NewMonitorModel()
	monPres := presenter.NewMonitorPresenter(monModel, logger)
	cycle := motion.NewCycle(src, extractor, scorer, monPres, monPres, cfg.PixelThreshold, cfg.MotionThreshold, logger)
	runner := schedule.NewRunner(cfg.Interval(), cfg.AlignTicks, nil, cycle.Advance, logger)

	rv := view.NewRootView(logger)
	runModel := &model.RunModel{}
	runPres := presenter.NewRunPresenter(runModel, runner, rv)
	sessPres := presenter.NewSessionPresenter(model.NewSessionModel(), runModel, rv)
	framePres := presenter.NewFramePresenter(monModel, rv)
	loop := presenter.NewLoop(sessPres, framePres, nil)
	loop.Schedule = func() { rv.After(uiTick, loop.Tick) }

	rv.Build(runPres.Toggle, runPres.Disable)
	runPres.Enable()
	loop.Tick()
	rv.Wait()
}

// parseBox parses "left,top,right,bottom".
func parseBox(s string) (l, t, r, b int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("box: want 4 comma-separated integers, got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, cerr := strconv.Atoi(strings.TrimSpace(p))
		if cerr != nil {
			return 0, 0, 0, 0, fmt.Errorf("box: %w", cerr)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
