// Package content loads the catalog documents: category quotes, the flat
// quote catalog and athlete profiles. Documents ship embedded in the binary
// and can be overridden by a directory on disk.
package content

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// Document file names.
const (
	FileCategoryQuotes = "quotes_by_category.json"
	FileCatalogQuotes  = "quotes.json"
	FileAthletes       = "athletes.yaml"
)

//go:embed data
var embedded embed.FS

// Source reads catalog documents from a file system.
// Implements ports.ContentSource.
type Source struct {
	fsys   fs.FS
	origin string
}

// NewEmbedded returns a source over the documents built into the binary.
func NewEmbedded() *Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}

	return &Source{fsys: sub, origin: "embedded"}
}

// NewDir returns a source over the documents in dir.
func NewDir(dir string) *Source {
	return &Source{fsys: os.DirFS(dir), origin: dir}
}

// New returns NewDir(dir), or NewEmbedded when dir is empty.
func New(dir string) *Source {
	if dir == "" {
		return NewEmbedded()
	}

	return NewDir(dir)
}

// Origin describes where documents are read from.
func (s *Source) Origin() string {
	return s.origin
}

type categoryQuoteDoc struct {
	ID     string `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type catalogQuoteDoc struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

type athleteDoc struct {
	Slug            string   `yaml:"slug"`
	Name            string   `yaml:"name"`
	Sport           string   `yaml:"sport"`
	Country         string   `yaml:"country"`
	Image           string   `yaml:"image"`
	Headline        string   `yaml:"headline"`
	Summary         string   `yaml:"summary"`
	Themes          []string `yaml:"themes"`
	SignatureMoment string   `yaml:"signatureMoment"`
	Mindsets        []string `yaml:"mindsets"`
	DailyHabits     []string `yaml:"dailyHabits"`
	TransferToLife  []string `yaml:"transferToLife"`
	Reference       string   `yaml:"reference"`
}

// CategoryQuotes implements ports.ContentSource. Each quote is tagged with
// its category; entries without text or author are skipped.
func (s *Source) CategoryQuotes(ctx context.Context) (map[string][]domain.Quote, error) {
	var doc map[string][]categoryQuoteDoc
	if err := s.readJSON(ctx, FileCategoryQuotes, &doc); err != nil {
		return nil, err
	}

	out := make(map[string][]domain.Quote, len(doc))

	for category, entries := range doc {
		quotes := make([]domain.Quote, 0, len(entries))

		for _, e := range entries {
			q := domain.Quote{ID: e.ID, Content: e.Quote, Author: e.Author, Tags: []string{category}}
			if q.Valid() {
				quotes = append(quotes, q)
			}
		}

		out[category] = quotes
	}

	return out, nil
}

// CatalogQuotes implements ports.ContentSource. Ids derive from the
// position in the document, so skipped entries do not renumber the rest.
func (s *Source) CatalogQuotes(ctx context.Context) ([]domain.CatalogQuote, error) {
	var doc []catalogQuoteDoc
	if err := s.readJSON(ctx, FileCatalogQuotes, &doc); err != nil {
		return nil, err
	}

	out := make([]domain.CatalogQuote, 0, len(doc))

	for i, e := range doc {
		q := domain.CatalogQuote{
			Quote: domain.Quote{
				ID:      domain.CatalogQuoteID(e.Category, i, e.Text),
				Content: e.Text,
				Author:  e.Author,
				Tags:    []string{e.Category},
			},
			Category: e.Category,
		}

		if q.Valid() {
			out = append(out, q)
		}
	}

	return out, nil
}

// Athletes implements ports.ContentSource. Every profile needs a unique slug.
func (s *Source) Athletes(ctx context.Context) ([]domain.Athlete, error) {
	raw, err := s.read(ctx, FileAthletes)
	if err != nil {
		return nil, err
	}

	var doc []athleteDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileAthletes, err)
	}

	seen := make(map[string]struct{}, len(doc))
	out := make([]domain.Athlete, 0, len(doc))

	for i, a := range doc {
		if a.Slug == "" {
			return nil, fmt.Errorf("parsing %s: athlete %d has no slug", FileAthletes, i)
		}

		if _, dup := seen[a.Slug]; dup {
			return nil, fmt.Errorf("parsing %s: duplicate slug %q", FileAthletes, a.Slug)
		}

		seen[a.Slug] = struct{}{}

		out = append(out, domain.Athlete(a))
	}

	return out, nil
}

func (s *Source) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", name, s.origin, err)
	}

	return raw, nil
}

func (s *Source) readJSON(ctx context.Context, name string, v any) error {
	raw, err := s.read(ctx, name)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	return nil
}
