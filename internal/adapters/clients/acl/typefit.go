package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// TypeFitName is the provider name of type.fit.
const TypeFitName = "typefit"

// typefitAttribution is appended to authors in the type.fit corpus.
const typefitAttribution = ", type.fit"

// errEmptyCorpus is returned when type.fit serves no quotes.
var errEmptyCorpus = errors.New("empty quote corpus")

// TypeFitProvider serves random entries of the type.fit corpus. The corpus
// is downloaded on first use and kept for the life of the provider; a failed
// or empty download is retried on the next call.
type TypeFitProvider struct {
	BaseAdapter

	mu     sync.Mutex
	corpus []typefitQuote
}

// NewTypeFitProvider creates a type.fit provider.
func NewTypeFitProvider(cfg ProviderConfig) *TypeFitProvider {
	return &TypeFitProvider{BaseAdapter: NewBaseAdapter(TypeFitName, cfg)}
}

// typefitQuote is one entry of GET /api/quotes.
type typefitQuote struct {
	Text   string  `json:"text"`
	Author *string `json:"author"`
}

// FetchQuote implements ports.QuoteProvider.
func (p *TypeFitProvider) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	corpus, err := p.load(ctx)
	if err != nil {
		return nil, p.fail(err)
	}

	index := p.random.IntN(len(corpus))

	return p.translate(corpus[index], index), nil
}

// CorpusSize returns the number of cached entries, zero before the first
// successful download.
func (p *TypeFitProvider) CorpusSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.corpus)
}

func (p *TypeFitProvider) load(ctx context.Context) ([]typefitQuote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.corpus) > 0 {
		return p.corpus, nil
	}

	body, err := p.Get(ctx, "/api/quotes", "fetch quote corpus")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[[]typefitQuote](body)
	if err != nil {
		return nil, domain.NewUnavailableError(TypeFitName, err.Error())
	}

	if len(*ext) == 0 {
		return nil, errEmptyCorpus
	}

	p.corpus = *ext

	p.logger.InfoContext(ctx, "quote corpus cached", slog.Int("size", len(p.corpus)))

	return p.corpus, nil
}

// translate builds the quote for the index-th corpus entry. The id keeps
// the author as published, attribution suffix included.
func (p *TypeFitProvider) translate(ext typefitQuote, index int) *domain.Quote {
	rawAuthor := ""
	if ext.Author != nil {
		rawAuthor = *ext.Author
	}

	idAuthor := rawAuthor
	if idAuthor == "" {
		idAuthor = domain.UnknownAuthor
	}

	return &domain.Quote{
		ID:      fmt.Sprintf("typefit-%s-%d-%d", idAuthor, p.millis(), index),
		Content: ext.Text,
		Author:  NormalizeAuthor(strings.Replace(rawAuthor, typefitAttribution, "", 1)),
	}
}
