// Package debug holds an opt-in runtime metrics logger, enabled only when
// config.Debug is true. It emits goroutine count, heap stats and process RSS
// at a fixed interval to rule out leaks during long monitoring runs.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartMetricsLogger launches a ticker goroutine that logs runtime metrics.
// It is lightweight; disable by running without the debug flag.
func StartMetricsLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("runtime-metrics",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
				slog.Uint64("rss", processRSS()),
			)
		}
	}()
}
