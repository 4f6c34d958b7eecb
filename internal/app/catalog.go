package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// CatalogServiceConfig contains the dependencies of a CatalogService.
type CatalogServiceConfig struct {
	Source  ports.ContentSource
	Random  ports.RandomSource
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// CatalogService answers queries over the bundled reference content.
// The documents are loaded into an immutable snapshot; Load swaps in a new
// snapshot only when every document parsed.
type CatalogService struct {
	source  ports.ContentSource
	random  ports.RandomSource
	logger  *slog.Logger
	metrics *metrics.Metrics

	snap atomic.Pointer[catalogSnapshot]
}

type catalogSnapshot struct {
	byCategory map[string][]domain.Quote
	flat       []domain.CatalogQuote
	athletes   []domain.Athlete
	distinct   []string
}

// NewCatalogService creates a catalog service with an empty snapshot.
// Call Load before serving.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Source == nil {
		panic("app: CatalogService requires a ContentSource")
	}

	if cfg.Random == nil {
		cfg.Random = NewRandom()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewUnregistered()
	}

	s := &CatalogService{source: cfg.Source, random: cfg.Random, logger: cfg.Logger, metrics: cfg.Metrics}
	s.snap.Store(&catalogSnapshot{byCategory: map[string][]domain.Quote{}})

	return s
}

// Load reads all documents in parallel. On error the previous snapshot
// stays in place.
func (s *CatalogService) Load(ctx context.Context) error {
	byCategory, flat, athletes, err := Parallel3(ctx,
		s.source.CategoryQuotes,
		s.source.CatalogQuotes,
		s.source.Athletes,
	)

	s.metrics.CatalogReloads.WithLabelValues(metrics.Result(err)).Inc()

	if err != nil {
		s.logger.ErrorContext(ctx, "catalog load failed, keeping previous content", slog.Any("error", err))
		return fmt.Errorf("loading catalog: %w", err)
	}

	seen := make(map[string]struct{})
	distinct := make([]string, 0)

	for _, q := range flat {
		if _, ok := seen[q.Category]; !ok {
			seen[q.Category] = struct{}{}
			distinct = append(distinct, q.Category)
		}
	}

	slices.Sort(distinct)

	s.snap.Store(&catalogSnapshot{byCategory: byCategory, flat: flat, athletes: athletes, distinct: distinct})

	s.logger.InfoContext(ctx, "catalog loaded",
		slog.Int("category_quotes", len(byCategory)),
		slog.Int("catalog_quotes", len(flat)),
		slog.Int("athletes", len(athletes)),
	)

	return nil
}

// Categories returns the fixed category list in display order.
func (s *CatalogService) Categories() []domain.Category {
	return slices.Clone(domain.Categories)
}

// CategoryQuotes returns the quotes of a category from the fixed list.
func (s *CatalogService) CategoryQuotes(id string) ([]domain.Quote, error) {
	if _, ok := domain.CategoryByID(id); !ok {
		return nil, domain.NewNotFoundError("category", id)
	}

	quotes := s.snap.Load().byCategory[id]

	out := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Clone())
	}

	return out, nil
}

// RandomCategoryQuote picks one quote of a category uniformly.
func (s *CatalogService) RandomCategoryQuote(id string) (domain.Quote, error) {
	quotes, err := s.CategoryQuotes(id)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(quotes) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("quotes for category", id)
	}

	return quotes[s.random.IntN(len(quotes))], nil
}

// Search filters the flat catalog by category and by a case-insensitive
// substring of content or author, then orders it by author. Entries with
// equal authors keep their document order.
func (s *CatalogService) Search(q domain.CatalogQuery) []domain.CatalogQuote {
	needle := strings.ToLower(q.Text)
	if strings.TrimSpace(needle) == "" {
		needle = ""
	}

	out := make([]domain.CatalogQuote, 0)

	for _, cq := range s.snap.Load().flat {
		if q.Category != "" && q.Category != domain.AllCategories && cq.Category != q.Category {
			continue
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(cq.Content), needle) &&
			!strings.Contains(strings.ToLower(cq.Author), needle) {
			continue
		}

		cq.Quote = cq.Quote.Clone()
		out = append(out, cq)
	}

	desc := q.Sort == domain.SortAuthorDesc

	slices.SortStableFunc(out, func(a, b domain.CatalogQuote) int {
		c := cmp.Compare(strings.ToLower(a.Author), strings.ToLower(b.Author))
		if desc {
			return -c
		}

		return c
	})

	return out
}

// RandomSearchResult picks one entry of Search(q) uniformly.
func (s *CatalogService) RandomSearchResult(q domain.CatalogQuery) (domain.CatalogQuote, error) {
	results := s.Search(q)
	if len(results) == 0 {
		return domain.CatalogQuote{}, domain.NewNotFoundError("catalog quote matching query", q.Text)
	}

	return results[s.random.IntN(len(results))], nil
}

// DistinctCategories returns the categories used by the flat catalog, sorted.
func (s *CatalogService) DistinctCategories() []string {
	return slices.Clone(s.snap.Load().distinct)
}

// Athletes returns every athlete profile in document order.
func (s *CatalogService) Athletes() []domain.Athlete {
	return slices.Clone(s.snap.Load().athletes)
}

// Athlete returns the profile with the given slug.
func (s *CatalogService) Athlete(slug string) (domain.Athlete, error) {
	for _, a := range s.snap.Load().athletes {
		if a.Slug == slug {
			return a, nil
		}
	}

	return domain.Athlete{}, domain.NewNotFoundError("athlete", slug)
}
