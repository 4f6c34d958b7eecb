// Package storage provides the key-value backends behind the preference
// store: SQLite on disk, process memory, and a no-op backend used when
// nothing durable is available.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverNone   = "none"
)

// probeKey is written and removed by Probe. Preference keys always contain
// a namespace separator, so it never collides with one.
const probeKey = "__storage_probe__"

// Backend is a key-value store that owns resources.
type Backend interface {
	ports.KeyValueStore
	io.Closer
}

// checkSize returns domain.ErrQuotaExceeded when value does not fit.
func checkSize(value string, limit int) error {
	if limit > 0 && len(value) > limit {
		return fmt.Errorf("%w: value of %d bytes exceeds limit of %d", domain.ErrQuotaExceeded, len(value), limit)
	}

	return nil
}

// Open creates the backend selected by cfg and probes it. A backend that
// cannot be opened or fails the probe is replaced by Unavailable, so the
// service keeps running with defaults; the cause is logged.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) Backend {
	var (
		backend Backend
		err     error
	)

	switch cfg.Driver {
	case DriverSQLite:
		backend, err = OpenSQLite(ctx, cfg.Path, cfg.MaxValueBytes)
	case DriverMemory:
		backend = NewMemory(cfg.MaxValueBytes)
	case DriverNone:
		backend = Unavailable{}
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if err != nil {
		logger.ErrorContext(ctx, "preference storage unavailable, preferences will not persist",
			slog.String("driver", cfg.Driver),
			slog.Any("error", err),
		)

		return Unavailable{}
	}

	if err := Probe(ctx, backend); err != nil {
		logger.ErrorContext(ctx, "preference storage failed its probe, preferences will not persist",
			slog.String("driver", cfg.Driver),
			slog.Any("error", err),
		)

		_ = backend.Close()

		return Unavailable{}
	}

	logger.InfoContext(ctx, "preference storage ready",
		slog.String("driver", cfg.Driver),
		slog.String("capability", backend.Capability().String()),
	)

	return backend
}

// Probe round-trips a value through kv. Unavailable backends pass
// trivially.
func Probe(ctx context.Context, kv ports.KeyValueStore) error {
	if kv.Capability() == ports.Unavailable {
		return nil
	}

	if err := kv.Set(ctx, probeKey, "ok"); err != nil {
		return fmt.Errorf("probe write: %w", err)
	}

	got, ok, err := kv.Get(ctx, probeKey)
	if err != nil {
		return fmt.Errorf("probe read: %w", err)
	}

	if !ok || got != "ok" {
		return errors.New("probe read returned a different value")
	}

	if err := kv.Delete(ctx, probeKey); err != nil {
		return fmt.Errorf("probe delete: %w", err)
	}

	return nil
}
