package ports

import (
	"context"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ContentSource loads the read-only catalog documents.
type ContentSource interface {
	// CategoryQuotes returns quotes grouped by category id.
	CategoryQuotes(ctx context.Context) (map[string][]domain.Quote, error)

	// CatalogQuotes returns the flat catalog in document order.
	CatalogQuotes(ctx context.Context) ([]domain.CatalogQuote, error)

	// Athletes returns the athlete mindset profiles.
	Athletes(ctx context.Context) ([]domain.Athlete, error)
}
