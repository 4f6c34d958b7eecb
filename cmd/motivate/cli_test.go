package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/bootstrap"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

const testConfigTemplate = `app:
  environment: test
providers:
  quotable:
    enabled: false
  typefit:
    enabled: false
  zenquotes:
    enabled: true
    base_url: %ZEN%
client:
  retry:
    max_attempts: 1
storage:
  driver: sqlite
  path: %DB%
notifications:
  enabled: false
`

type harness struct {
	configDir string
	opts      bootstrap.Options
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	zen := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"q":"Act as if what you do makes a difference.","a":"William James"}]`))
	}))
	t.Cleanup(zen.Close)

	dir := t.TempDir()
	body := bytes.ReplaceAll([]byte(testConfigTemplate), []byte("%ZEN%"), []byte(zen.URL))
	body = bytes.ReplaceAll(body, []byte("%DB%"), []byte(filepath.Join(dir, "prefs.db")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), body, 0o600))

	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local)

	return &harness{
		configDir: dir,
		opts: bootstrap.Options{
			Random: app.NewSeededRandom(5),
			Now:    func() time.Time { return now },
		},
	}
}

// run executes one motivate invocation the way a shell would, with a fresh
// application each time so state only survives through storage.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	c := &cli{opts: h.opts}
	t.Cleanup(func() { _ = c.teardown() })

	var out bytes.Buffer

	cmd := newRootCmd(c)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config-dir", h.configDir, "--env", "test", "--profile", "alice"}, args...))

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		_ = c.teardown()
	}

	return out.String(), err
}

func TestQuoteCommand(t *testing.T) {
	h := newHarness(t)

	for _, args := range [][]string{{"quote"}, {"quote", "--new"}} {
		out, err := h.run(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Act as if what you do makes a difference.")
		assert.Contains(t, out, "~ William James")
	}
}

func TestTodayCommand_CachesPerProfile(t *testing.T) {
	h := newHarness(t)

	first, err := h.run(t, "today")
	require.NoError(t, err)
	assert.Contains(t, first, "William James")

	second, err := h.run(t, "today")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	prefs, err := h.run(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, prefs, "last quote:    2026-10-18")
}

func TestFavoritesCommands(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorites yet.")

	out, err = h.run(t, "favorites", "add", "Stay hungry, stay foolish.", "--author", "Steve Jobs", "--id", "jobs-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved jobs-1 (1 favorites)")

	out, err = h.run(t, "favorites", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 favorites)")

	out, err = h.run(t, "fav", "add", "Stay hungry, stay foolish.", "--author", "Steve Jobs", "--id", "jobs-1")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 favorites)", "duplicate ids are ignored")

	out, err = h.run(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Stay hungry, stay foolish.")
	assert.Contains(t, out, "William James")

	out, err = h.run(t, "favorites", "remove", "jobs-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed jobs-1 (1 favorites)")

	_, err = h.run(t, "favorites", "remove", "jobs-1")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPrefsCommands(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:         light")
	assert.Contains(t, out, "notifications: false at 09:00")

	out, err = h.run(t, "prefs", "set", "--theme", "dark", "--notifications", "--time", "07:30")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:         dark")
	assert.Contains(t, out, "notifications: true at 07:30")

	out, err = h.run(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:         dark")
	assert.Contains(t, out, "font size:     medium")

	_, err = h.run(t, "prefs", "clear")
	require.NoError(t, err)

	out, err = h.run(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:         light")
}

func TestPrefsSet_Errors(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name       string
		args       []string
		validation bool
	}{
		{name: "no flags", args: []string{"prefs", "set"}},
		{name: "unknown theme", args: []string{"prefs", "set", "--theme", "neon"}, validation: true},
		{name: "bad accent", args: []string{"prefs", "set", "--accent", "purple"}, validation: true},
		{name: "bad time", args: []string{"prefs", "set", "--time", "7pm"}, validation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.validation, domain.IsValidation(err))
		})
	}
}

func TestCategoriesCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "categories")
	require.NoError(t, err)

	for _, c := range domain.Categories {
		assert.Contains(t, out, c.ID)
	}

	out, err = h.run(t, "categories", "sports")
	require.NoError(t, err)
	assert.Contains(t, out, "id: ")

	_, err = h.run(t, "categories", "cooking")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestProvidersCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "providers")
	require.NoError(t, err)
	assert.Contains(t, out, "zenquotes")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "William James")
}

func TestRootCommand_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "--profile", "not a profile", "today")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "broken.yaml"), []byte("log:\n  level: loud\n"), 0o600))

	cmd := newRootCmd(&cli{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config-dir", h.configDir, "--env", "broken", "today"})

	err = cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
