package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// ProviderConfig contains the dependencies shared by every quote provider.
type ProviderConfig struct {
	// Client is the HTTP client for the provider. Its BaseURL points at the
	// provider's API root.
	Client *clients.Client

	// Random picks tag groups and corpus entries.
	Random ports.RandomSource

	// Now stamps clock-derived ids. Defaults to time.Now.
	Now func() time.Time

	// Logger is the structured logger. Defaults to slog.Default.
	Logger *slog.Logger
}

// BaseAdapter provides the request, decoding and health plumbing shared by
// the providers. Embed it in a provider.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
	random      ports.RandomSource
	now         func() time.Time
	logger      *slog.Logger
}

// NewBaseAdapter validates cfg and fills in defaults.
// Panics if Client or Random is nil.
func NewBaseAdapter(serviceName string, cfg ProviderConfig) BaseAdapter {
	if cfg.Client == nil {
		panic(serviceName + ": Client is required")
	}

	if cfg.Random == nil {
		panic(serviceName + ": Random is required")
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return BaseAdapter{
		client:      cfg.Client,
		serviceName: serviceName,
		random:      cfg.Random,
		now:         cfg.Now,
		logger:      cfg.Logger.With(slog.String("provider", serviceName)),
	}
}

// Name returns the provider name. It identifies the provider in logs,
// metrics and health checks.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Check reports the provider as unavailable while its circuit is open.
// Implements ports.HealthChecker.
func (a *BaseAdapter) Check(ctx context.Context) error {
	if err := a.client.Check(ctx); err != nil {
		return MapHTTPError(nil, err, a.serviceName, "health check")
	}

	return nil
}

// Get performs a GET request and returns the response body, which the
// caller must close. Failures are returned as domain errors.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp.Body, nil
}

// fail wraps err with the provider name.
func (a *BaseAdapter) fail(err error) error {
	return domain.NewProviderError(a.serviceName, err)
}

// millis returns the current clock reading used in minted ids.
func (a *BaseAdapter) millis() int64 {
	return a.now().UnixMilli()
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// NormalizeAuthor trims the author and substitutes domain.UnknownAuthor
// when nothing is left.
func NormalizeAuthor(author string) string {
	if author = strings.TrimSpace(author); author == "" {
		return domain.UnknownAuthor
	}

	return author
}
