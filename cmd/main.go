package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/adapters/config"
	"fintrack/internal/adapters/errors/noop"
	"fintrack/internal/adapters/errors/sentry"
	"fintrack/internal/bootstrap"
	"fintrack/pkg/errors"
	"fintrack/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	// Initialize error tracker
	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	// Build the dependency graph; artifact loading fails fast here
	container, err := bootstrap.New(cfg, log, errorTracker)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	log.Info("System initialized successfully")

	// Start the HTTP server
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- container.Server.Start()
	}()

	waitForShutdown(container, serverErr, log)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Info("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}

// waitForShutdown waits for a shutdown signal or a fatal server error and
// performs graceful shutdown
func waitForShutdown(container *bootstrap.Container, serverErr <-chan error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("Shutting down...")
	case err := <-serverErr:
		if err != nil {
			log.Errorf("HTTP server error: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	container.Close(ctx)
	log.Info("Shutdown complete")
}
