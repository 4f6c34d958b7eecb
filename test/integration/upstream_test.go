//go:build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
)

// Upstream paths served by the fake provider APIs.
const (
	quotablePath  = "/random"
	typefitPath   = "/api/quotes"
	zenquotesPath = "/api/random"
)

// upstream fakes quotable, type.fit and zenquotes on one server. Each path
// can be told to answer 503 for its next N requests.
type upstream struct {
	*httptest.Server

	mu      sync.Mutex
	hits    map[string]int
	failing map[string]int

	zenRateLimited atomic.Bool
	delay          atomic.Int64
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()

	u := &upstream{
		hits:    make(map[string]int),
		failing: make(map[string]int),
	}

	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)

	return u
}

func (u *upstream) serve(w http.ResponseWriter, r *http.Request) {
	if d := time.Duration(u.delay.Load()); d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return
		}
	}

	u.mu.Lock()
	u.hits[r.URL.Path]++
	fail := u.failing[r.URL.Path] > 0
	if fail {
		u.failing[r.URL.Path]--
	}
	u.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case quotablePath:
		_, _ = w.Write([]byte(`{"_id":"qt-1","content":"The secret of getting ahead is getting started.","author":"Mark Twain","tags":["motivational"]}`))
	case typefitPath:
		_, _ = w.Write([]byte(`[{"text":"Well begun is half done.","author":"Aristotle, type.fit"},{"text":"Do it now.","author":null}]`))
	case zenquotesPath:
		if u.zenRateLimited.Load() {
			_, _ = w.Write([]byte(`[{"q":"Too many requests. Obtain an auth key for unlimited access.","a":"zenquotes.io"}]`))
			return
		}

		_, _ = w.Write([]byte(`[{"q":"Act as if what you do makes a difference.","a":"William James"}]`))
	default:
		http.NotFound(w, r)
	}
}

func (u *upstream) failNext(path string, n int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.failing[path] = n
}

func (u *upstream) hitCount(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.hits[path]
}

// upstreamConfig returns the default configuration with every provider
// pointed at baseURL, short retry intervals and storage in a temp dir.
func upstreamConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(t.TempDir(), "")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	cfg.App.Environment = "test"
	cfg.Providers.Quotable.BaseURL = baseURL
	cfg.Providers.TypeFit.BaseURL = baseURL
	cfg.Providers.ZenQuotes.BaseURL = baseURL
	cfg.Client.Timeout = 2 * time.Second
	cfg.Client.Retry.InitialInterval = 5 * time.Millisecond
	cfg.Client.Retry.MaxInterval = 20 * time.Millisecond
	cfg.Storage.Path = filepath.Join(t.TempDir(), "preferences.db")

	return cfg
}
