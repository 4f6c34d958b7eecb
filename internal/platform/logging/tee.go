package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler duplicates every record onto a set of sinks, typically the
// console handler and the rotating JSON file. Each sink applies its own
// level, so the file can keep debug records the console drops.
type teeHandler struct {
	sinks []slog.Handler
}

func newTee(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}

	return &teeHandler{sinks: sinks}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

//nolint:gocritic // slog.Handler passes records by value
func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, s := range t.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}

		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return t.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (t *teeHandler) derive(fn func(slog.Handler) slog.Handler) *teeHandler {
	sinks := make([]slog.Handler, len(t.sinks))
	for i, s := range t.sinks {
		sinks[i] = fn(s)
	}

	return &teeHandler{sinks: sinks}
}
