package storage

import (
	"context"

	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Unavailable is the backend used when no durable storage exists. Reads
// find nothing and writes are dropped.
type Unavailable struct{}

// Get implements ports.KeyValueStore.
func (Unavailable) Get(context.Context, string) (string, bool, error) { return "", false, nil }

// Set implements ports.KeyValueStore.
func (Unavailable) Set(context.Context, string, string) error { return nil }

// Delete implements ports.KeyValueStore.
func (Unavailable) Delete(context.Context, string) error { return nil }

// Capability implements ports.KeyValueStore.
func (Unavailable) Capability() ports.Capability { return ports.Unavailable }

// Close implements io.Closer.
func (Unavailable) Close() error { return nil }
