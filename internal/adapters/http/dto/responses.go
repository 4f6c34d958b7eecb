package dto

import (
	"time"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// QuoteResponse is a quote on the wire.
type QuoteResponse struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags,omitempty"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Content: q.Content, Author: q.Author, Tags: q.Tags}
}

// NewQuoteResponses converts a list, never returning nil.
func NewQuoteResponses(qs []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}

// PreferencesResponse is the full preference record of a profile.
type PreferencesResponse struct {
	Favorites            []QuoteResponse `json:"favorites"`
	Theme                string          `json:"theme"`
	FontSize             string          `json:"fontSize"`
	AccentColor          string          `json:"accentColor"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	NotificationTime     string          `json:"notificationTime"`
	LastQuoteDate        string          `json:"lastQuoteDate"`
	LastQuote            *QuoteResponse  `json:"lastQuote"`
}

// NewPreferencesResponse converts a domain record.
func NewPreferencesResponse(r domain.PreferenceRecord) PreferencesResponse {
	resp := PreferencesResponse{
		Favorites:            NewQuoteResponses(r.Favorites),
		Theme:                string(r.Theme),
		FontSize:             string(r.FontSize),
		AccentColor:          r.AccentColor,
		NotificationsEnabled: r.NotificationsEnabled,
		NotificationTime:     r.NotificationTime,
		LastQuoteDate:        r.LastQuoteDate,
	}

	if r.LastQuote != nil {
		q := NewQuoteResponse(*r.LastQuote)
		resp.LastQuote = &q
	}

	return resp
}

// FavoriteStatusResponse answers GET /favorites/:id.
type FavoriteStatusResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// CategoryResponse is a catalog category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// NewCategoryResponses converts the category list.
func NewCategoryResponses(cs []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Emoji:       c.Emoji,
			Description: c.Description,
			Color:       c.Color,
		})
	}

	return out
}

// CatalogQuoteResponse is a catalog entry with its category.
type CatalogQuoteResponse struct {
	QuoteResponse

	Category string `json:"category"`
}

// NewCatalogQuoteResponse converts a catalog quote.
func NewCatalogQuoteResponse(q domain.CatalogQuote) CatalogQuoteResponse {
	return CatalogQuoteResponse{QuoteResponse: NewQuoteResponse(q.Quote), Category: q.Category}
}

// AthleteResponse is an athlete mindset profile.
type AthleteResponse struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Sport           string   `json:"sport"`
	Country         string   `json:"country"`
	Image           string   `json:"image"`
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	Themes          []string `json:"themes"`
	SignatureMoment string   `json:"signatureMoment"`
	Mindsets        []string `json:"mindsets"`
	DailyHabits     []string `json:"dailyHabits"`
	TransferToLife  []string `json:"transferToLife"`
	Reference       string   `json:"reference"`
}

// NewAthleteResponse converts an athlete.
func NewAthleteResponse(a domain.Athlete) AthleteResponse {
	return AthleteResponse(a)
}

// ShareResponse is the share payload for one platform.
type ShareResponse struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	Target   string `json:"target,omitempty"`
	Message  string `json:"message,omitempty"`
}

// NewShareResponse converts a share link.
func NewShareResponse(l domain.ShareLink) ShareResponse {
	return ShareResponse{
		Platform: string(l.Platform),
		Text:     l.Text,
		URL:      l.URL,
		Target:   l.Target,
		Message:  l.Message,
	}
}

// ScheduleResponse describes a pending daily reminder.
type ScheduleResponse struct {
	Profile     string        `json:"profile"`
	ScheduledAt time.Time     `json:"scheduledAt"`
	Quote       QuoteResponse `json:"quote"`
}

// CancelResponse reports whether a pending reminder was cancelled.
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}
