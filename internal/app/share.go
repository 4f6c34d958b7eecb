package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ShareService builds share payloads whose permalinks point at BaseURL.
type ShareService struct {
	baseURL string
	logger  *slog.Logger
}

// NewShareService creates a share service.
func NewShareService(baseURL string, logger *slog.Logger) *ShareService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ShareService{baseURL: baseURL, logger: logger}
}

// Share returns the text, permalink and platform target for q.
func (s *ShareService) Share(ctx context.Context, q domain.Quote, platform domain.SharePlatform) (domain.ShareLink, error) {
	if !q.Valid() {
		return domain.ShareLink{}, domain.NewValidationError("quote", "content and author are required")
	}

	link, err := domain.BuildShareLink(q, platform, s.baseURL)
	if err != nil {
		return domain.ShareLink{}, err
	}

	s.logger.DebugContext(ctx, "share link built",
		slog.String("quote_id", q.ID),
		slog.String("platform", string(platform)),
	)

	return link, nil
}
