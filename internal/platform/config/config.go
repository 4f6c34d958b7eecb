// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultClientRetryMaxAttempts is the default number of retry attempts.
	DefaultClientRetryMaxAttempts = 3

	// DefaultClientRetryMultiplier is the default exponential backoff multiplier.
	DefaultClientRetryMultiplier = 2.0

	// DefaultClientRetryJitterFactor is the default jitter percentage (±25%).
	DefaultClientRetryJitterFactor = 0.25

	// DefaultClientCircuitMaxFailures is the default failures before circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultClientCircuitHalfOpenLimit is the default successes to close circuit.
	DefaultClientCircuitHalfOpenLimit = 3

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultTransportIdleConnTimeout is the default idle connection timeout.
	DefaultTransportIdleConnTimeout = 90 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultRecencySize is how many served quote ids are remembered.
	DefaultRecencySize = 50

	// DefaultAttemptsPerProvider multiplies the provider count to bound attempts.
	DefaultAttemptsPerProvider = 3

	// DefaultStorageMaxValueBytes mirrors the usual browser storage quota (5MB).
	DefaultStorageMaxValueBytes = 5 << 20

	// DefaultCatalogPageSize is the default number of catalog quotes per page.
	DefaultCatalogPageSize = 12
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Client    ClientConfig    `koanf:"client"`

	Providers     ProvidersConfig     `koanf:"providers"`
	Aggregator    AggregatorConfig    `koanf:"aggregator"`
	Storage       StorageConfig       `koanf:"storage"`
	Catalog       CatalogConfig       `koanf:"catalog"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Share         ShareConfig         `koanf:"share"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"       validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"   validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"    validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	Enabled       bool   `koanf:"enabled"`
	JWKSEndpoint  string `koanf:"jwks_endpoint"  validate:"required_if=Enabled true,omitempty,url"`
	Issuer        string `koanf:"issuer"         validate:"required_if=Enabled true"`
	Audience      string `koanf:"audience"       validate:"required_if=Enabled true"`
	SubjectHeader string `koanf:"subject_header"`
}

// ClientConfig contains HTTP client settings for downstream services.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	Transport      TransportConfig      `koanf:"transport"`
}

// RetryConfig contains retry settings for HTTP clients.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"         validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"      validate:"required,min=1s"`
}

// ProvidersConfig lists the remote quote providers.
type ProvidersConfig struct {
	Quotable  ProviderConfig `koanf:"quotable"`
	TypeFit   ProviderConfig `koanf:"typefit"`
	ZenQuotes ProviderConfig `koanf:"zenquotes"`
}

// ProviderConfig configures one remote quote provider.
type ProviderConfig struct {
	Enabled bool   `koanf:"enabled"`
	BaseURL string `koanf:"base_url" validate:"required_if=Enabled true,omitempty,url"`
}

// AggregatorConfig tunes quote selection.
type AggregatorConfig struct {
	RecencySize         int `koanf:"recency_size"          validate:"required,min=1,max=10000"`
	AttemptsPerProvider int `koanf:"attempts_per_provider" validate:"required,min=1,max=10"`
}

// StorageConfig selects the preference storage backend.
type StorageConfig struct {
	Driver        string `koanf:"driver"          validate:"required,oneof=sqlite memory none"`
	Path          string `koanf:"path"            validate:"required_if=Driver sqlite"`
	Namespace     string `koanf:"namespace"       validate:"required"`
	MaxValueBytes int    `koanf:"max_value_bytes" validate:"required,min=1024"`
}

// CatalogConfig controls the bundled content catalog.
type CatalogConfig struct {
	// Dir overrides the embedded documents when set.
	Dir      string `koanf:"dir"`
	Watch    bool   `koanf:"watch"`
	PageSize int    `koanf:"page_size" validate:"required,min=1,max=100"`
}

// NotificationsConfig selects how daily reminders are delivered.
type NotificationsConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Driver     string `koanf:"driver"      validate:"required_if=Enabled true,omitempty,oneof=log webhook"`
	WebhookURL string `koanf:"webhook_url" validate:"required_if=Driver webhook,omitempty,url"`
}

// ShareConfig contains settings for share links.
type ShareConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "daily-motivation",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "daily-motivation",
		"telemetry.sampling_rate": 1.0,

		"auth.enabled":        false,
		"auth.jwks_endpoint":  "",
		"auth.issuer":         "",
		"auth.audience":       "",
		"auth.subject_header": "X-User-ID",

		"client.timeout":                           "30s",
		"client.retry.max_attempts":                DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":            "100ms",
		"client.retry.max_interval":                "5s",
		"client.retry.multiplier":                  DefaultClientRetryMultiplier,
		"client.retry.jitter_factor":               DefaultClientRetryJitterFactor,
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"providers.quotable.enabled":   true,
		"providers.quotable.base_url":  "https://api.quotable.io",
		"providers.typefit.enabled":    true,
		"providers.typefit.base_url":   "https://type.fit",
		"providers.zenquotes.enabled":  true,
		"providers.zenquotes.base_url": "https://zenquotes.io",

		"aggregator.recency_size":          DefaultRecencySize,
		"aggregator.attempts_per_provider": DefaultAttemptsPerProvider,

		"storage.driver":          "sqlite",
		"storage.path":            "./data/preferences.db",
		"storage.namespace":       "dailyMotivationApp",
		"storage.max_value_bytes": DefaultStorageMaxValueBytes,

		"catalog.dir":       "",
		"catalog.watch":     false,
		"catalog.page_size": DefaultCatalogPageSize,

		"notifications.enabled":     true,
		"notifications.driver":      "log",
		"notifications.webhook_url": "",

		"share.base_url": "http://localhost:8080",
	}
}

// DefaultDir is where Load looks for configuration files.
const DefaultDir = "configs"

// Load loads configuration from DefaultDir. See LoadFrom.
func Load(profile string) (*Config, error) {
	return LoadFrom(DefaultDir, profile)
}

// LoadFrom loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file ({dir}/{profile}.yaml)
//  3. Base config file ({dir}/base.yaml)
//  4. Default values
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, filepath.Join(dir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := filepath.Join(dir, profile+".yaml")

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
