package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/content"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/notify"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/storage"
	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// fixedNow is the local wall-clock time seen by every service in the API tests.
var fixedNow = time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local)

// countingProvider mints a new valid quote on every fetch.
type countingProvider struct {
	n atomic.Int64
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) FetchQuote(context.Context) (*domain.Quote, error) {
	i := p.n.Add(1)

	return &domain.Quote{
		ID:      fmt.Sprintf("q-%d", i),
		Content: fmt.Sprintf("content %d", i),
		Author:  "Author",
	}, nil
}

type apiFixture struct {
	engine    *gin.Engine
	kv        *storage.Memory
	store     *app.PreferenceStore
	provider  *countingProvider
	scheduler *app.Scheduler
}

type fixtureOption func(*fixtureOptions)

type fixtureOptions struct {
	notifier ports.Notifier
	auth     *config.AuthConfig
}

func withNotifier(n ports.Notifier) fixtureOption {
	return func(o *fixtureOptions) { o.notifier = n }
}

func withAuth(cfg *config.AuthConfig) fixtureOption {
	return func(o *fixtureOptions) { o.auth = cfg }
}

// newAPIFixture wires every handler to real application services backed by
// in-memory storage and the embedded catalog.
func newAPIFixture(t *testing.T, opts ...fixtureOption) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewUnregistered()
	now := func() time.Time { return fixedNow }

	o := fixtureOptions{notifier: notify.NewLog(logger), auth: &config.AuthConfig{}}
	for _, opt := range opts {
		opt(&o)
	}

	kv := storage.NewMemory(64 * 1024)
	store := app.NewPreferenceStore(app.PreferenceStoreConfig{Store: kv, Logger: logger, Metrics: m})

	provider := &countingProvider{}
	aggregator := app.NewAggregator(app.AggregatorConfig{
		Providers: []ports.QuoteProvider{provider},
		Random:    app.NewSeededRandom(1),
		Logger:    logger,
		Metrics:   m,
	})

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Aggregator: aggregator, Store: store, Logger: logger, Now: now})

	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Source:  content.NewEmbedded(),
		Random:  app.NewSeededRandom(1),
		Logger:  logger,
		Metrics: m,
	})
	require.NoError(t, catalog.Load(context.Background()))

	scheduler := app.NewScheduler(app.SchedulerConfig{Notifier: o.notifier, Logger: logger, Metrics: m, Now: now})
	reminders := app.NewReminderService(app.ReminderServiceConfig{
		Scheduler: scheduler,
		Store:     store,
		Quotes:    quotes,
		Logger:    logger,
		Now:       now,
	})
	t.Cleanup(reminders.Close)

	engine := gin.New()
	api := engine.Group("/api/v1", middleware.Profile(o.auth))

	NewQuoteHandler(quotes).RegisterQuoteRoutes(api)
	NewCatalogHandler(catalog, 5).RegisterCatalogRoutes(api)
	NewPreferencesHandler(store).RegisterPreferencesRoutes(api)
	NewShareHandler(app.NewShareService("https://motivation.example", logger)).RegisterShareRoutes(api)
	NewNotificationHandler(reminders).RegisterNotificationRoutes(api)

	return &apiFixture{engine: engine, kv: kv, store: store, provider: provider, scheduler: scheduler}
}

// do sends a request as profile (no header when empty) and returns the recorder.
func (f *apiFixture) do(t *testing.T, method, path, profile string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if profile != "" {
		req.Header.Set("X-User-ID", profile)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	return w
}

// decode unmarshals the recorder body into a T.
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func assertStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}

// quoteBody is a favorite payload.
func quoteBody(id string) map[string]any {
	return map[string]any{"id": id, "content": "content of " + id, "author": "Author " + id}
}
