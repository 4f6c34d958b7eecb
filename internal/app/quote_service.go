// Package app contains the application services: quote selection, the
// preference store and the catalog, share and reminder use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/telemetry"
)

// dateLayout is the calendar date format of PreferenceRecord.LastQuoteDate.
const dateLayout = "2006-01-02"

// QuoteService serves the quote of the day and fresh quotes.
type QuoteService struct {
	aggregator *Aggregator
	store      *PreferenceStore
	now        func() time.Time
	logger     *slog.Logger
}

// QuoteServiceConfig contains the dependencies of a QuoteService.
type QuoteServiceConfig struct {
	Aggregator *Aggregator
	Store      *PreferenceStore
	Logger     *slog.Logger

	// Now returns the local wall-clock time. Defaults to time.Now.
	Now func() time.Time
}

// NewQuoteService creates a quote service. Aggregator and Store are required.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Aggregator == nil {
		panic("app: QuoteService requires an Aggregator")
	}

	if cfg.Store == nil {
		panic("app: QuoteService requires a PreferenceStore")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &QuoteService{
		aggregator: cfg.Aggregator,
		store:      cfg.Store,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
}

// QuoteOfTheDay returns the profile's quote for today's local date. The
// first call of a day selects a quote and caches it in the preference
// record, so later calls on the same day return the same quote.
func (s *QuoteService) QuoteOfTheDay(ctx context.Context, profile string) domain.Quote {
	ctx, span := telemetry.StartSpan(ctx, "QuoteService.QuoteOfTheDay", telemetry.AttrProfile.String(profile))
	defer span.End()

	today := s.now().Format(dateLayout)

	rec := s.store.Read(ctx, profile)
	if rec.LastQuoteDate == today && rec.LastQuote.Valid() {
		return rec.LastQuote.Clone()
	}

	q := s.aggregator.GetQuote(ctx, false)

	s.store.Write(ctx, profile, domain.PreferencesPatch{
		LastQuote:     &q,
		LastQuoteDate: &today,
	})

	s.logger.InfoContext(ctx, "selected quote of the day",
		slog.String("quote_id", q.ID),
		slog.String("date", today),
	)

	return q
}

// NewQuote returns a fresh quote without touching the daily cache.
func (s *QuoteService) NewQuote(ctx context.Context, preferNew bool) domain.Quote {
	return s.aggregator.GetQuote(ctx, preferNew)
}
