// Package main is the entry point for the daily motivation HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-motivation/internal/bootstrap"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
	"github.com/jsamuelsen/daily-motivation/internal/platform/telemetry"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Wire storage, providers, catalog and notifications
	application, err := bootstrap.New(ctx, cfg, logger, bootstrap.Options{WatchCatalog: true})
	if err != nil {
		return fmt.Errorf("wiring application: %w", err)
	}

	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			logger.Error("application shutdown error", slog.Any("error", closeErr))
		}
	}()

	// 6. Create HTTP server and handlers
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:              logger,
		AuthConfig:          &cfg.Auth,
		AppConfig:           &cfg.App,
		Tracing:             cfg.Telemetry.Enabled,
		Timeout:             http.DefaultRequestTimeout,
		HealthHandler:       handlers.NewHealthHandler(application.Health, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		QuoteHandler:        handlers.NewQuoteHandler(application.Quotes),
		CatalogHandler:      handlers.NewCatalogHandler(application.Catalog, cfg.Catalog.PageSize),
		PreferencesHandler:  handlers.NewPreferencesHandler(application.Store),
		ShareHandler:        handlers.NewShareHandler(application.Share),
		NotificationHandler: handlers.NewNotificationHandler(application.Reminders),
	})

	// 7. Start server (non-blocking)
	serverErr := server.Start()

	// 8. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until ctx is cancelled by a signal or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
