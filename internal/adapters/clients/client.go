package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/daily-motivation/internal/adapters/clients"

	// defaultTimeout applies when Config.Timeout is unset.
	defaultTimeout = 10 * time.Second

	// defaultUserAgent identifies outbound requests to quote providers.
	defaultUserAgent = "daily-motivation/1.0"
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is prepended to every request path, e.g. "https://zenquotes.io".
	BaseURL string

	// ServiceName identifies the downstream service in logs, spans and metrics.
	ServiceName string

	// Timeout is the per-attempt request timeout.
	// Total wall-clock time may exceed this value due to retries and backoff.
	Timeout time.Duration

	// UserAgent is sent with every request. Defaults to defaultUserAgent.
	UserAgent string

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// AuthFunc optionally decorates each attempt, including retries.
	AuthFunc func(*http.Request)

	// Logger is an optional logger. If nil, slog.Default is used.
	Logger *slog.Logger
}

// NewConfig builds a client Config for one downstream from the shared client settings.
func NewConfig(serviceName, baseURL string, cfg *config.ClientConfig, logger *slog.Logger) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: serviceName,
		Timeout:     cfg.Timeout,
		Retry:       cfg.Retry,
		Circuit:     cfg.CircuitBreaker,
		Transport:   cfg.Transport,
		Logger:      logger,
	}
}

// Client is an instrumented HTTP client for a single downstream.
// It retries transient failures with exponential backoff and jitter, guards the
// downstream with a circuit breaker, propagates request and trace ids, and
// records OpenTelemetry spans and metrics.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	cfg         *Config
	logger      *slog.Logger
	cb          *CircuitBreaker

	tracer          trace.Tracer
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a new instrumented HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Circuit.MaxFailures,
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Transport.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.Transport.MaxIdleConns
	}

	if cfg.Transport.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.Transport.MaxIdleConnsPerHost
	}

	if cfg.Transport.IdleConnTimeout > 0 {
		transport.IdleConnTimeout = cfg.Transport.IdleConnTimeout
	}

	return &Client{
		http:            &http.Client{Timeout: cfg.Timeout, Transport: transport},
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		cfg:             cfg,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// Do executes an HTTP request with retry, circuit breaker, tracing, and logging.
//
// Retry only works for requests without a body or with req.GetBody set.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(start), "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	c.injectHeaders(ctx, req)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.executeWithRetry(ctx, req, logger)
	duration := time.Since(start)

	if err != nil {
		c.cb.RecordFailure()
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, duration, "error")
		logger.Warn("request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
	}

	c.cb.RecordSuccess()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	c.recordMetrics(ctx, req.Method, resp.StatusCode, duration, fmt.Sprintf("%dxx", resp.StatusCode/100))

	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

func (c *Client) executeWithRetry(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for attempt := range c.cfg.Retry.MaxAttempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, logger); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		if err != nil {
			if !isRetryableError(err) {
				return nil, err
			}

			logger.Debug("request failed with retryable error",
				slog.Int("attempt", attempt+1),
				slog.Any("error", err),
			)

			lastErr = err

			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			logger.Debug("request failed with server error",
				slog.Int("attempt", attempt+1),
				slog.Int("status", resp.StatusCode),
			)

			drain(resp)

			lastErr = &StatusError{StatusCode: resp.StatusCode}

			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, logger *slog.Logger) error {
	backoff := c.calculateBackoff(attempt)
	logger.Debug("retrying request",
		slog.Int("attempt", attempt+1),
		slog.Duration("backoff", backoff),
	)

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return fmt.Errorf("rewinding request body: %w", err)
		}

		req.Body = body
	}

	if c.cfg.AuthFunc != nil {
		c.cfg.AuthFunc(req)
	}

	return nil
}

// Get performs an HTTP GET request.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// Post performs an HTTP POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.Do(ctx, req)
}

// Name returns the downstream service name. It makes the client a health checker.
func (c *Client) Name() string {
	return c.serviceName
}

// Check reports the downstream as unhealthy while its circuit is open.
// It never performs a request, so probes do not consume provider rate limits.
func (c *Client) Check(_ context.Context) error {
	if c.cb.State() == StateOpen {
		return ErrCircuitOpen
	}

	return nil
}

// CircuitState returns the current state of the circuit breaker.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}

	if c.cfg.AuthFunc != nil {
		c.cfg.AuthFunc(req)
	}
}

func (c *Client) buildURL(path string) string {
	if path == "" {
		return c.baseURL
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// calculateBackoff returns initial * multiplier^attempt, capped at the max
// interval, with symmetric jitter of JitterFactor.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := float64(c.cfg.Retry.InitialInterval) * math.Pow(c.cfg.Retry.Multiplier, float64(attempt))

	if limit := float64(c.cfg.Retry.MaxInterval); limit > 0 && backoff > limit {
		backoff = limit
	}

	jitter := backoff * c.cfg.Retry.JitterFactor * (rand.Float64()*2 - 1) //nolint:gosec // jitter only

	return time.Duration(backoff + jitter)
}

func (c *Client) recordMetrics(ctx context.Context, method string, statusCode int, duration time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryableError reports whether err is a transient network failure.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
