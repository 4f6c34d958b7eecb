package ports

import (
	"context"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// Notifier delivers reminders to a profile.
type Notifier interface {
	// Notify delivers n. Returns domain.ErrUnavailable when delivery is not possible.
	Notify(ctx context.Context, n domain.Notification) error

	// Capability reports whether notifications can be delivered at all.
	Capability() Capability
}
