package ports

import (
	"context"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// QuoteProvider is a remote source that yields one quote per call.
//
// Implementations normalize the remote payload into a domain.Quote and report
// any transport or decoding failure as an error. A returned quote may still be
// invalid; callers check Valid before using it.
type QuoteProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// FetchQuote retrieves a single quote.
	FetchQuote(ctx context.Context) (*domain.Quote, error)
}

// RandomSource supplies the randomness used for provider ordering and
// corpus selection. Tests substitute a deterministic implementation.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
