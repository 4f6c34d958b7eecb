package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/platform/telemetry"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

const (
	defaultRecencySize         = 50
	defaultAttemptsPerProvider = 3
)

// AggregatorConfig contains the dependencies of an Aggregator.
type AggregatorConfig struct {
	Providers []ports.QuoteProvider
	Random    ports.RandomSource
	Logger    *slog.Logger
	Metrics   *metrics.Metrics

	// RecencySize is how many served quote IDs are remembered.
	RecencySize int

	// AttemptsPerProvider bounds the attempts to 3 × len(Providers) by default.
	AttemptsPerProvider int
}

// Aggregator selects one quote per call from a set of unreliable providers.
//
// Provider order is reshuffled on every call and attempts cycle through that
// order. Provider failures, invalid quotes and, when a new quote is preferred,
// recently served quotes are skipped. When every attempt is used up the quote
// comes from the embedded fallback list, so GetQuote always succeeds.
type Aggregator struct {
	providers   []ports.QuoteProvider
	random      ports.RandomSource
	recent      *RecencyBuffer
	attemptsPer int
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewAggregator creates an aggregator. An empty provider list is allowed and
// always yields fallback quotes.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	if cfg.Random == nil {
		cfg.Random = NewRandom()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewUnregistered()
	}

	if cfg.RecencySize <= 0 {
		cfg.RecencySize = defaultRecencySize
	}

	if cfg.AttemptsPerProvider <= 0 {
		cfg.AttemptsPerProvider = defaultAttemptsPerProvider
	}

	return &Aggregator{
		providers:   slices.Clone(cfg.Providers),
		random:      cfg.Random,
		recent:      NewRecencyBuffer(cfg.RecencySize),
		attemptsPer: cfg.AttemptsPerProvider,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
	}
}

// GetQuote returns a valid quote. With preferNew set, quotes served within
// the recency window are rejected on every attempt but the last.
// A cancelled ctx ends the provider attempts early and yields a fallback quote.
func (a *Aggregator) GetQuote(ctx context.Context, preferNew bool) domain.Quote {
	ctx, span := telemetry.StartSpan(ctx, "Aggregator.GetQuote", telemetry.AttrPreferNew.Bool(preferNew))
	defer span.End()

	order := slices.Clone(a.providers)
	a.random.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	maxAttempts := len(order) * a.attemptsPer

	for attempt := range maxAttempts {
		if ctx.Err() != nil {
			a.logger.WarnContext(ctx, "quote selection interrupted, using fallback",
				slog.Int("attempt", attempt),
				slog.Any("error", ctx.Err()),
			)

			break
		}

		provider := order[attempt%len(order)]

		q, ok := a.try(ctx, provider, attempt)
		if !ok {
			continue
		}

		if preferNew && attempt < maxAttempts-1 && a.recent.Contains(q.ID) {
			a.metrics.ProviderFailures.WithLabelValues(provider.Name(), metrics.ReasonRecent).Inc()
			a.logger.DebugContext(ctx, "skipping recently served quote",
				slog.String("provider", provider.Name()),
				slog.String("quote_id", q.ID),
			)

			continue
		}

		a.recent.Add(q.ID)
		a.metrics.QuotesServed.WithLabelValues(metrics.OutcomeProvider, provider.Name()).Inc()
		span.SetAttributes(
			telemetry.AttrOutcome.String(metrics.OutcomeProvider),
			telemetry.AttrProvider.String(provider.Name()),
			telemetry.AttrAttempt.Int(attempt),
		)

		return q
	}

	q := fallbackQuotes[a.random.IntN(len(fallbackQuotes))].Clone()
	a.recent.Add(q.ID)
	a.metrics.QuotesServed.WithLabelValues(metrics.OutcomeFallback, "embedded").Inc()
	span.SetAttributes(telemetry.AttrOutcome.String(metrics.OutcomeFallback))

	a.logger.InfoContext(ctx, "serving fallback quote",
		slog.String("quote_id", q.ID),
		slog.Int("providers", len(order)),
	)

	return q
}

// try performs one provider attempt. Every failure, including a panic in
// the provider, is logged and reported as ok == false.
func (a *Aggregator) try(ctx context.Context, p ports.QuoteProvider, attempt int) (q domain.Quote, ok bool) {
	name := p.Name()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			a.reject(ctx, name, attempt, metrics.ReasonError, fmt.Errorf("provider panicked: %v", r))

			q, ok = domain.Quote{}, false
		}
	}()

	fetched, err := p.FetchQuote(ctx)

	a.metrics.ObserveFetch(name, start)

	if err != nil {
		a.reject(ctx, name, attempt, metrics.ReasonError, err)
		return domain.Quote{}, false
	}

	if !fetched.Valid() {
		a.reject(ctx, name, attempt, metrics.ReasonInvalid, nil)
		return domain.Quote{}, false
	}

	return fetched.Clone(), true
}

func (a *Aggregator) reject(ctx context.Context, provider string, attempt int, reason string, err error) {
	a.metrics.ProviderFailures.WithLabelValues(provider, reason).Inc()

	attrs := []any{
		slog.String("provider", provider),
		slog.Int("attempt", attempt),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	a.logger.WarnContext(ctx, "provider attempt failed", attrs...)
}

// Recent returns the remembered quote IDs, oldest first.
func (a *Aggregator) Recent() []string {
	return a.recent.Snapshot()
}

// ProviderStatus is the outcome of probing one provider.
type ProviderStatus struct {
	Name    string
	Quote   *domain.Quote
	Latency time.Duration
	Err     error
}

// Probe fetches once from every provider concurrently, without touching the
// recency window. Results follow the configured provider order.
func (a *Aggregator) Probe(ctx context.Context) []ProviderStatus {
	probes := make([]func(context.Context) ProviderStatus, 0, len(a.providers))

	for _, p := range a.providers {
		probes = append(probes, func(ctx context.Context) ProviderStatus {
			start := time.Now()
			q, err := p.FetchQuote(ctx)

			status := ProviderStatus{Name: p.Name(), Latency: time.Since(start), Err: err}
			if err == nil && !q.Valid() {
				status.Err = domain.NewValidationError("quote", "provider returned an incomplete quote")
			}

			if status.Err == nil {
				status.Quote = q
			}

			return status
		})
	}

	return Gather(ctx, probes...)
}
