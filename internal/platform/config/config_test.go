package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "daily-motivation", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, cfg.Client.Transport.IdleConnTimeout)
	assert.Equal(t, "X-User-ID", cfg.Auth.SubjectHeader)

	require.NoError(t, cfg.Validate())
}

func TestLoad_DomainDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Providers.Quotable.Enabled)
	assert.Equal(t, "https://api.quotable.io", cfg.Providers.Quotable.BaseURL)
	assert.Equal(t, "https://type.fit", cfg.Providers.TypeFit.BaseURL)
	assert.Equal(t, "https://zenquotes.io", cfg.Providers.ZenQuotes.BaseURL)

	assert.Equal(t, DefaultRecencySize, cfg.Aggregator.RecencySize)
	assert.Equal(t, DefaultAttemptsPerProvider, cfg.Aggregator.AttemptsPerProvider)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "dailyMotivationApp", cfg.Storage.Namespace)
	assert.Equal(t, DefaultStorageMaxValueBytes, cfg.Storage.MaxValueBytes)

	assert.Empty(t, cfg.Catalog.Dir)
	assert.Equal(t, DefaultCatalogPageSize, cfg.Catalog.PageSize)

	assert.Equal(t, "log", cfg.Notifications.Driver)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_STORAGE_DRIVER", "memory")
	t.Setenv("APP_CATALOG_WATCH", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.True(t, cfg.Catalog.Watch)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "daily-motivation", cfg.App.Name)
}

func TestLoadFrom_FilePrecedence(t *testing.T) {
	dir := t.TempDir()

	base := `
app:
  environment: dev
catalog:
  page_size: 24
providers:
  zenquotes:
    enabled: false
`
	profile := `
catalog:
  page_size: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(profile), 0o600))

	cfg, err := LoadFrom(dir, "test")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Environment)
	assert.Equal(t, 6, cfg.Catalog.PageSize)
	assert.False(t, cfg.Providers.ZenQuotes.Enabled)
	assert.True(t, cfg.Providers.Quotable.Enabled)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("app: [unclosed"), 0o600))

	_, err := LoadFrom(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}
