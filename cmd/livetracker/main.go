package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/football-live/internal/app"
	"github.com/riskibarqy/football-live/internal/config"
	"github.com/riskibarqy/football-live/internal/observability"
	"github.com/riskibarqy/football-live/internal/platform/logging"
)

// livetracker runs the polling loop without the HTTP surface.
func main() {
	once := flag.Bool("once", false, "run a single cycle and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("process", "livetracker")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiler, err := observability.InitPyroscope(cfg, "livetracker", logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	if *once {
		tracked, err := container.Tracker.RunCycle(ctx)
		if err != nil {
			logger.Error("live tracker cycle failed", "error", err)
			exitCode = 1
		} else {
			logger.Info("live tracker cycle done", "tracked", tracked)
		}
	} else if err := container.Tracker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("live tracker stopped", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := stopProfiler(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := container.Close(); err != nil {
		logger.Error("close app", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
