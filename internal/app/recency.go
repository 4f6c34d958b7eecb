package app

import (
	"slices"
	"sync"
)

// RecencyBuffer remembers the IDs of the most recently served quotes.
// When full, the oldest ID is dropped first.
type RecencyBuffer struct {
	mu   sync.Mutex
	ids  []string
	size int
}

// NewRecencyBuffer returns a buffer holding at most size IDs.
func NewRecencyBuffer(size int) *RecencyBuffer {
	if size < 1 {
		size = 1
	}

	return &RecencyBuffer{ids: make([]string, 0, size), size: size}
}

// Contains reports whether id was served recently.
func (b *RecencyBuffer) Contains(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Contains(b.ids, id)
}

// Add records id as the newest entry. Duplicates are kept; each serve counts.
func (b *RecencyBuffer) Add(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.ids) == b.size {
		copy(b.ids, b.ids[1:])
		b.ids = b.ids[:b.size-1]
	}

	b.ids = append(b.ids, id)
}

// Snapshot returns the IDs oldest first.
func (b *RecencyBuffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.ids)
}

// Len returns the number of remembered IDs.
func (b *RecencyBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.ids)
}
