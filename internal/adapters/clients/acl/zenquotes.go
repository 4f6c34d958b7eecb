package acl

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ZenQuotesName is the provider name of zenquotes.io.
const ZenQuotesName = "zenquotes"

// zenQuotesRateLimitAuthor is the author zenquotes.io puts on the
// placeholder quote it serves once a client exceeds the free rate limit.
const zenQuotesRateLimitAuthor = "zenquotes.io"

var errEmptyResponse = errors.New("empty response")

// ZenQuotesProvider fetches random quotes from the zenquotes.io API.
type ZenQuotesProvider struct {
	BaseAdapter
}

// NewZenQuotesProvider creates a zenquotes.io provider.
func NewZenQuotesProvider(cfg ProviderConfig) *ZenQuotesProvider {
	return &ZenQuotesProvider{BaseAdapter: NewBaseAdapter(ZenQuotesName, cfg)}
}

// zenQuotesResponse is one element of GET /api/random.
type zenQuotesResponse struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// FetchQuote implements ports.QuoteProvider.
func (p *ZenQuotesProvider) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	body, err := p.Get(ctx, "/api/random", "fetch random quote")
	if err != nil {
		return nil, p.fail(err)
	}

	ext, err := DecodeResponse[[]zenQuotesResponse](body)
	if err != nil {
		return nil, p.fail(domain.NewUnavailableError(ZenQuotesName, err.Error()))
	}

	if len(*ext) == 0 {
		return nil, p.fail(errEmptyResponse)
	}

	first := (*ext)[0]
	if first.A == zenQuotesRateLimitAuthor {
		return nil, p.fail(domain.NewUnavailableError(ZenQuotesName, "rate limit exceeded"))
	}

	return &domain.Quote{
		ID:      fmt.Sprintf("zenquotes-%d", p.millis()),
		Content: first.Q,
		Author:  NormalizeAuthor(first.A),
	}, nil
}
