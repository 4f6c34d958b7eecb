package ports

import "context"

// Capability reports whether an optional platform facility can be used.
type Capability int

const (
	// Unavailable means the facility is absent and every call degrades to a no-op.
	Unavailable Capability = iota

	// Available means the facility was probed successfully at startup.
	Available
)

// String implements fmt.Stringer.
func (c Capability) String() string {
	if c == Available {
		return "available"
	}

	return "unavailable"
}

// KeyValueStore is a durable string store.
//
// Writes replace the whole value for a key in one step. A backend that cannot
// accept a value because of its size returns domain.ErrQuotaExceeded.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Capability reports whether the backend is usable.
	Capability() Capability
}
