package clients

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
)

func defaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "zenquotes",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	}
}

func closeBody(t *testing.T, resp *http.Response) {
	t.Helper()

	if err := resp.Body.Close(); err != nil {
		t.Errorf("failed to close response body: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorContains(t, err, "config is required")

	_, err = New(&Config{})
	require.ErrorContains(t, err, "service name is required")

	client, err := New(&Config{ServiceName: "typefit", BaseURL: "https://type.fit/"})
	require.NoError(t, err)
	assert.Equal(t, "https://type.fit", client.baseURL)
	assert.Equal(t, defaultTimeout, client.cfg.Timeout)
	assert.Equal(t, 1, client.cfg.Retry.MaxAttempts)
}

func TestNewConfig(t *testing.T) {
	shared := &config.ClientConfig{
		Timeout:   2 * time.Second,
		Retry:     config.RetryConfig{MaxAttempts: 2},
		Transport: config.TransportConfig{MaxIdleConnsPerHost: 4},
	}

	cfg := NewConfig("quotable", "https://api.quotable.io", shared, nil)

	assert.Equal(t, "quotable", cfg.ServiceName)
	assert.Equal(t, "https://api.quotable.io", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.Retry.MaxAttempts)
	assert.Equal(t, 4, cfg.Transport.MaxIdleConnsPerHost)
}

func TestClient_HeaderPropagation(t *testing.T) {
	var got http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-123")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-456")

	resp, err := client.Get(ctx, "/api/random")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, "req-123", got.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-456", got.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, defaultUserAgent, got.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestClient_RetryOnServerError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/random")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/random")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_MaxRetriesExceeded(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/random")

	require.ErrorIs(t, err, ErrMaxRetriesExceeded)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_CircuitBreakerShortCircuits(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 2

	client, err := New(cfg)
	require.NoError(t, err)

	_, _ = client.Get(context.Background(), "/random")
	require.NoError(t, client.Check(context.Background()))

	_, _ = client.Get(context.Background(), "/random")
	assert.Equal(t, StateOpen, client.CircuitState())
	require.ErrorIs(t, client.Check(context.Background()), ErrCircuitOpen)

	before := calls.Load()

	_, err = client.Get(context.Background(), "/random")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, calls.Load())
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "/random")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_PostRewindsBodyOnRetry(t *testing.T) {
	var (
		attempts atomic.Int32
		bodies   []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "", strings.NewReader(`{"title":"Daily Motivation"}`))
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []string{`{"title":"Daily Motivation"}`, `{"title":"Daily Motivation"}`}, bodies)
}

func TestClient_AuthFuncCalledPerAttempt(t *testing.T) {
	var (
		authCalls atomic.Int32
		requests  atomic.Int32
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hook-token", r.Header.Get("Authorization"))

		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.Retry.MaxAttempts = 2
	cfg.AuthFunc = func(r *http.Request) {
		authCalls.Add(1)
		r.Header.Set("Authorization", "Bearer hook-token")
	}

	client, err := New(cfg)
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, int32(2), authCalls.Load())
}

func TestClient_BuildURL(t *testing.T) {
	client, err := New(defaultConfig("https://zenquotes.io/"))
	require.NoError(t, err)

	assert.Equal(t, "https://zenquotes.io/api/random", client.buildURL("/api/random"))
	assert.Equal(t, "https://zenquotes.io/api/random", client.buildURL("api/random"))
	assert.Equal(t, "https://zenquotes.io", client.buildURL(""))
}

func TestCalculateBackoff(t *testing.T) {
	cfg := defaultConfig("")
	cfg.Retry.InitialInterval = 100 * time.Millisecond
	cfg.Retry.MaxInterval = time.Second
	cfg.Retry.JitterFactor = 0.25

	client, err := New(cfg)
	require.NoError(t, err)

	assert.InDelta(t, float64(100*time.Millisecond), float64(client.calculateBackoff(0)), float64(25*time.Millisecond))
	assert.InDelta(t, float64(200*time.Millisecond), float64(client.calculateBackoff(1)), float64(50*time.Millisecond))
	assert.LessOrEqual(t, client.calculateBackoff(10), cfg.Retry.MaxInterval+cfg.Retry.MaxInterval/4)
}

type testNetError struct {
	timeout bool
}

func (e testNetError) Error() string   { return "test net error" }
func (e testNetError) Timeout() bool   { return e.timeout }
func (e testNetError) Temporary() bool { return true }

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil error", nil, false},
		{"context canceled", context.Canceled, false},
		{"context deadline exceeded", context.DeadlineExceeded, false},
		{"net error with timeout", testNetError{timeout: true}, true},
		{"net error without timeout", testNetError{timeout: false}, false},
		{"connection refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}
