// Package bootstrap assembles the application from configuration. The HTTP
// service and the CLI share it so both see the same storage, providers and
// catalog.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients/acl"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/content"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/notify"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/storage"
	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Options overrides process-wide dependencies, mostly for tests.
type Options struct {
	// Registerer receives the domain collectors. Defaults to
	// prometheus.DefaultRegisterer so /-/metrics exposes them.
	Registerer prometheus.Registerer

	// Random drives provider order and random picks. Defaults to math/rand/v2.
	Random ports.RandomSource

	// Now is the local wall clock. Defaults to time.Now.
	Now func() time.Time

	// WatchCatalog starts the catalog directory watcher when the config
	// asks for it. The CLI leaves it off.
	WatchCatalog bool
}

// App holds every wired component.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Health  *ports.DefaultHealthRegistry

	Storage    storage.Backend
	Providers  []acl.Provider
	Aggregator *app.Aggregator
	Store      *app.PreferenceStore
	Quotes     *app.QuoteService
	Catalog    *app.CatalogService
	Share      *app.ShareService
	Scheduler  *app.Scheduler
	Reminders  *app.ReminderService

	watcher *content.Watcher
}

// New wires the application. Storage problems never fail startup: the
// store degrades to an unavailable backend. Provider, notifier and catalog
// problems are configuration errors and do.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	if opts.Random == nil {
		opts.Random = app.NewRandom()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(opts.Registerer),
		Health:  ports.NewHealthRegistry(),
	}

	// 1. Preference storage, probed once
	a.Storage = storage.Open(ctx, cfg.Storage, logger)
	a.Store = app.NewPreferenceStore(app.PreferenceStoreConfig{
		Store:     a.Storage,
		Namespace: cfg.Storage.Namespace,
		Logger:    logger,
		Metrics:   a.Metrics,
	})

	if checker, ok := a.Storage.(ports.HealthChecker); ok {
		if err := a.Health.Register(checker); err != nil {
			return nil, a.closeOnError(fmt.Errorf("registering storage health check: %w", err))
		}
	}

	// 2. Quote providers and the aggregator
	providers, err := acl.NewProviders(cfg, opts.Random, opts.Now, logger)
	if err != nil {
		return nil, a.closeOnError(fmt.Errorf("creating quote providers: %w", err))
	}

	a.Providers = providers

	quoteProviders := make([]ports.QuoteProvider, 0, len(providers))
	for _, p := range providers {
		quoteProviders = append(quoteProviders, p)

		if err := a.Health.RegisterOptional(p); err != nil {
			return nil, a.closeOnError(fmt.Errorf("registering provider health check: %w", err))
		}
	}

	a.Aggregator = app.NewAggregator(app.AggregatorConfig{
		Providers:           quoteProviders,
		Random:              opts.Random,
		Logger:              logger,
		Metrics:             a.Metrics,
		RecencySize:         cfg.Aggregator.RecencySize,
		AttemptsPerProvider: cfg.Aggregator.AttemptsPerProvider,
	})

	a.Quotes = app.NewQuoteService(app.QuoteServiceConfig{
		Aggregator: a.Aggregator,
		Store:      a.Store,
		Logger:     logger,
		Now:        opts.Now,
	})

	// 3. Content catalog
	source := content.New(cfg.Catalog.Dir)
	a.Catalog = app.NewCatalogService(app.CatalogServiceConfig{
		Source:  source,
		Random:  opts.Random,
		Logger:  logger.With(slog.String("catalog", source.Origin())),
		Metrics: a.Metrics,
	})

	if err := a.Catalog.Load(ctx); err != nil {
		return nil, a.closeOnError(err)
	}

	if opts.WatchCatalog && cfg.Catalog.Watch && cfg.Catalog.Dir != "" {
		a.watcher, err = content.NewWatcher(cfg.Catalog.Dir, a.Catalog.Load, content.DefaultDebounce, logger)
		if err != nil {
			return nil, a.closeOnError(fmt.Errorf("creating catalog watcher: %w", err))
		}

		if err := a.watcher.Start(ctx); err != nil {
			return nil, a.closeOnError(fmt.Errorf("starting catalog watcher: %w", err))
		}
	}

	// 4. Notifications
	notifier, err := notify.New(cfg.Notifications, &cfg.Client, logger)
	if err != nil {
		return nil, a.closeOnError(fmt.Errorf("creating notifier: %w", err))
	}

	if checker, ok := notifier.(ports.HealthChecker); ok {
		if err := a.Health.RegisterOptional(checker); err != nil {
			return nil, a.closeOnError(fmt.Errorf("registering notifier health check: %w", err))
		}
	}

	a.Scheduler = app.NewScheduler(app.SchedulerConfig{
		Notifier: notifier,
		Logger:   logger,
		Metrics:  a.Metrics,
		Now:      opts.Now,
	})

	a.Reminders = app.NewReminderService(app.ReminderServiceConfig{
		Scheduler: a.Scheduler,
		Store:     a.Store,
		Quotes:    a.Quotes,
		Logger:    logger,
		Now:       opts.Now,
	})

	// 5. Sharing
	a.Share = app.NewShareService(cfg.Share.BaseURL, logger)

	logger.InfoContext(ctx, "application wired",
		slog.Int("providers", len(providers)),
		slog.String("storage", a.Storage.Capability().String()),
		slog.String("notifications", notifier.Capability().String()),
	)

	return a, nil
}

// Close cancels pending reminders, stops the catalog watcher and closes
// the storage backend.
func (a *App) Close() error {
	var errs []error

	if a.Reminders != nil {
		a.Reminders.Close()
	}

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing catalog watcher: %w", err))
		}
	}

	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing storage: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (a *App) closeOnError(err error) error {
	if closeErr := a.Close(); closeErr != nil {
		a.Logger.Error("cleanup after failed startup", slog.Any("error", closeErr))
	}

	return err
}
