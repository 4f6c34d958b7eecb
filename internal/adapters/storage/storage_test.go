package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/mocks"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestSQLite(t *testing.T, limit int) *SQLite {
	t.Helper()

	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "prefs.db"), limit)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// backends runs the shared contract against each durable backend.
func backends(t *testing.T, limit int) map[string]Backend {
	t.Helper()

	return map[string]Backend{
		"memory": NewMemory(limit),
		"sqlite": openTestSQLite(t, limit),
	}
}

func TestBackends_RoundTrip(t *testing.T) {
	for name, kv := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := kv.Get(ctx, "dailyMotivationApp:alice")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "dailyMotivationApp:alice", `{"theme":"dark"}`))
			require.NoError(t, kv.Set(ctx, "dailyMotivationApp:alice", `{"theme":"light"}`))

			got, ok, err := kv.Get(ctx, "dailyMotivationApp:alice")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"theme":"light"}`, got)

			require.NoError(t, kv.Delete(ctx, "dailyMotivationApp:alice"))
			require.NoError(t, kv.Delete(ctx, "dailyMotivationApp:alice"), "deleting a missing key")

			_, ok, err = kv.Get(ctx, "dailyMotivationApp:alice")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.Equal(t, ports.Available, kv.Capability())
		})
	}
}

func TestBackends_QuotaExceeded(t *testing.T) {
	for name, kv := range backends(t, 16) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, kv.Set(ctx, "k", strings.Repeat("x", 16)))

			err := kv.Set(ctx, "k", strings.Repeat("x", 17))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrQuotaExceeded))

			got, _, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Len(t, got, 16, "rejected write leaves the previous value")
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenSQLite(ctx, path, 0)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Check(ctx))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
	assert.Equal(t, "storage", s.Name())
}

func TestUnavailable(t *testing.T) {
	var kv Unavailable
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ports.Unavailable, kv.Capability())
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	mem := NewMemory(0)
	require.NoError(t, Probe(ctx, mem))
	assert.Equal(t, 0, mem.Len(), "probe key is removed")

	require.NoError(t, Probe(ctx, Unavailable{}))

	broken := mocks.NewMockKeyValueStore(t)
	broken.EXPECT().Capability().Return(ports.Available)
	broken.EXPECT().Set(mock.Anything, probeKey, "ok").Return(errors.New("attempt to write a readonly database"))

	err := Probe(ctx, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe write")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  config.StorageConfig
		want ports.Capability
	}{
		{name: "sqlite", cfg: config.StorageConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "p.db"), MaxValueBytes: 1024}, want: ports.Available},
		{name: "memory", cfg: config.StorageConfig{Driver: DriverMemory, MaxValueBytes: 1024}, want: ports.Available},
		{name: "none", cfg: config.StorageConfig{Driver: DriverNone}, want: ports.Unavailable},
		{name: "unknown driver degrades", cfg: config.StorageConfig{Driver: "redis"}, want: ports.Unavailable},
		{name: "probe failure degrades", cfg: config.StorageConfig{Driver: DriverMemory, MaxValueBytes: 1}, want: ports.Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := Open(ctx, tt.cfg, discardLogger())
			t.Cleanup(func() { _ = backend.Close() })

			assert.Equal(t, tt.want, backend.Capability())
		})
	}
}
