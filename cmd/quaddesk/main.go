package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/QuadDesk/internal/config"
	"github.com/GriffinCanCode/QuadDesk/internal/logging"
	"github.com/GriffinCanCode/QuadDesk/internal/monitoring"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
	"github.com/GriffinCanCode/QuadDesk/internal/workspace"
)

func main() {
	tickMS := flag.Int("tick", 0, "Scheduler cycle interval in milliseconds")
	logFile := flag.String("log", "", "Log file path (empty disables logging)")
	logLevel := flag.String("log-level", "", "Log level")
	metricsAddr := flag.String("metrics", "", "Prometheus listen address (empty disables)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *tickMS > 0 {
		cfg.Tick.IntervalMS = *tickMS
	}
	if *logFile != "" {
		cfg.Logging.Path = *logFile
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	logger, err := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		Path:  cfg.Logging.Path,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := termbox.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	metrics := monitoring.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	screen := term.NewTermboxScreen()
	mgr := workspace.NewManager(screen, logger).WithMetrics(metrics)
	logger.Info("workspace started", zap.Int("tick_ms", cfg.Tick.IntervalMS))

	// Keyboard events and timer ticks are delivered serially to one
	// goroutine; each is processed to completion before the next.
	events := make(chan termbox.Event, 16)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.Tick.IntervalMS) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc && !mgr.ModalOpen() {
				logger.Info("workspace stopped")
				return
			}
			if k, ok := term.Decode(ev); ok {
				mgr.Key(k)
			}
		case <-ticker.C:
			mgr.Update()
			screen.Flush()
		}
	}
}
