package storage

import (
	"context"
	"sync"

	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Memory keeps values in process memory. Values are lost on restart.
type Memory struct {
	mu            sync.RWMutex
	data          map[string]string
	maxValueBytes int
}

// NewMemory creates an empty in-memory store. maxValueBytes <= 0 disables
// the size limit.
func NewMemory(maxValueBytes int) *Memory {
	return &Memory{data: make(map[string]string), maxValueBytes: maxValueBytes}
}

// Get implements ports.KeyValueStore.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]

	return v, ok, nil
}

// Set implements ports.KeyValueStore.
func (m *Memory) Set(_ context.Context, key, value string) error {
	if err := checkSize(value, m.maxValueBytes); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value

	return nil
}

// Delete implements ports.KeyValueStore.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

// Capability implements ports.KeyValueStore.
func (m *Memory) Capability() ports.Capability { return ports.Available }

// Close implements io.Closer.
func (m *Memory) Close() error { return nil }

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
