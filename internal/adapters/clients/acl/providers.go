package acl

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Provider is a quote provider that also reports its health.
type Provider interface {
	ports.QuoteProvider
	ports.HealthChecker
}

// NewProviders builds every enabled provider, each with its own client and
// circuit breaker. The order is quotable, typefit, zenquotes.
func NewProviders(cfg *config.Config, random ports.RandomSource, now func() time.Time, logger *slog.Logger) ([]Provider, error) {
	type entry struct {
		name string
		pc   config.ProviderConfig
		make func(ProviderConfig) Provider
	}

	entries := []entry{
		{QuotableName, cfg.Providers.Quotable, func(c ProviderConfig) Provider { return NewQuotableProvider(c) }},
		{TypeFitName, cfg.Providers.TypeFit, func(c ProviderConfig) Provider { return NewTypeFitProvider(c) }},
		{ZenQuotesName, cfg.Providers.ZenQuotes, func(c ProviderConfig) Provider { return NewZenQuotesProvider(c) }},
	}

	providers := make([]Provider, 0, len(entries))

	for _, e := range entries {
		if !e.pc.Enabled {
			logger.Info("quote provider disabled", slog.String("provider", e.name))
			continue
		}

		client, err := clients.New(clients.NewConfig(e.name, e.pc.BaseURL, &cfg.Client, logger))
		if err != nil {
			return nil, fmt.Errorf("creating %s client: %w", e.name, err)
		}

		providers = append(providers, e.make(ProviderConfig{
			Client: client,
			Random: random,
			Now:    now,
			Logger: logger,
		}))
	}

	return providers, nil
}
