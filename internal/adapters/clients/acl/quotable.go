package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

// QuotableName is the provider name of quotable.io.
const QuotableName = "quotable"

// quotableTagGroups are the topic mixes a request draws from. Each request
// uses one group so successive quotes vary in theme.
var quotableTagGroups = [][]string{
	{"motivational", "inspirational", "success"},
	{"wisdom", "life", "famous-quotes"},
	{"leadership", "business", "entrepreneurship"},
	{"sports", "competition", "determination"},
	{"philosophy", "spirituality", "mindfulness"},
	{"science", "technology", "innovation"},
	{"art", "creativity", "imagination"},
	{"education", "learning", "knowledge"},
}

// QuotableProvider fetches random quotes from the quotable.io API.
type QuotableProvider struct {
	BaseAdapter
}

// NewQuotableProvider creates a quotable.io provider.
func NewQuotableProvider(cfg ProviderConfig) *QuotableProvider {
	return &QuotableProvider{BaseAdapter: NewBaseAdapter(QuotableName, cfg)}
}

// quotableResponse is the external DTO of GET /random.
type quotableResponse struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// FetchQuote implements ports.QuoteProvider.
func (p *QuotableProvider) FetchQuote(ctx context.Context) (*domain.Quote, error) {
	tags := quotableTagGroups[p.random.IntN(len(quotableTagGroups))]
	path := "/random?" + url.Values{"tags": {strings.Join(tags, "|")}}.Encode()

	p.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := p.Get(ctx, path, "fetch random quote")
	if err != nil {
		return nil, p.fail(err)
	}

	ext, err := DecodeResponse[quotableResponse](body)
	if err != nil {
		return nil, p.fail(domain.NewUnavailableError(QuotableName, err.Error()))
	}

	q := p.translate(ext)

	p.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("quote_id", q.ID),
		slog.String("author", q.Author))

	return q, nil
}

func (p *QuotableProvider) translate(ext *quotableResponse) *domain.Quote {
	id := ext.ID
	if id == "" {
		id = fmt.Sprintf("quotable-%d", p.millis())
	}

	tags := ext.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Quote{
		ID:      id,
		Content: ext.Content,
		Author:  NormalizeAuthor(ext.Author),
		Tags:    tags,
	}
}
