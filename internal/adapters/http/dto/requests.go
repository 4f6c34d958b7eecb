package dto

import (
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// QuoteBody is a quote as sent by clients when favoriting or sharing.
type QuoteBody struct {
	ID      string   `json:"id"      validate:"required,max=256"`
	Content string   `json:"content" validate:"required,notempty"`
	Author  string   `json:"author"  validate:"required,notempty"`
	Tags    []string `json:"tags"`
}

// ToDomain converts the body to a domain quote.
func (b QuoteBody) ToDomain() domain.Quote {
	return domain.Quote{ID: b.ID, Content: b.Content, Author: b.Author, Tags: b.Tags}
}

// RandomQuoteRequest are the query parameters of GET /quotes/random.
type RandomQuoteRequest struct {
	PreferNew bool `form:"preferNew"`
}

// PreferencesPatchRequest is the body of PATCH /preferences. Absent fields
// are left untouched.
type PreferencesPatchRequest struct {
	Favorites            *[]QuoteBody `json:"favorites"            validate:"omitempty,dive"`
	Theme                *string      `json:"theme"                validate:"omitempty,oneof=light dark"`
	FontSize             *string      `json:"fontSize"             validate:"omitempty,oneof=small medium large"`
	AccentColor          *string      `json:"accentColor"          validate:"omitempty,hexcolor"`
	NotificationsEnabled *bool        `json:"notificationsEnabled"`
	NotificationTime     *string      `json:"notificationTime"     validate:"omitempty,clock"`

	// ClearLastQuote drops the cached quote of the day.
	ClearLastQuote bool `json:"clearLastQuote"`
}

// ToDomain converts the request to a domain patch.
func (r *PreferencesPatchRequest) ToDomain() domain.PreferencesPatch {
	patch := domain.PreferencesPatch{
		AccentColor:          r.AccentColor,
		NotificationsEnabled: r.NotificationsEnabled,
		NotificationTime:     r.NotificationTime,
		ClearLastQuote:       r.ClearLastQuote,
	}

	if r.Favorites != nil {
		favorites := make([]domain.Quote, 0, len(*r.Favorites))
		for _, b := range *r.Favorites {
			favorites = append(favorites, b.ToDomain())
		}

		patch.Favorites = &favorites
	}

	if r.Theme != nil {
		theme := domain.Theme(*r.Theme)
		patch.Theme = &theme
	}

	if r.FontSize != nil {
		size := domain.FontSize(*r.FontSize)
		patch.FontSize = &size
	}

	return patch
}

// Validate applies the domain rules the tags cannot express, such as
// unique favorite ids.
func (r *PreferencesPatchRequest) Validate() error {
	return r.ToDomain().Validate()
}

// ShareRequest is the body of POST /share.
type ShareRequest struct {
	Quote    QuoteBody `json:"quote"`
	Platform string    `json:"platform" validate:"required,oneof=twitter facebook instagram copy native"`
}

// ScheduleRequest is the body of POST /notifications/schedule. An empty
// time uses the profile's notificationTime preference.
type ScheduleRequest struct {
	Time string `json:"time" validate:"omitempty,clock"`
}

// CatalogSearchRequest are the query parameters of GET /catalog/quotes.
type CatalogSearchRequest struct {
	PaginationRequest

	Query    string `form:"q"        validate:"max=200"`
	Category string `form:"category" validate:"omitempty,max=64"`
	Sort     string `form:"sort"     validate:"omitempty,oneof=az za"`
}

// ToDomain converts the request to a catalog query.
func (r *CatalogSearchRequest) ToDomain() domain.CatalogQuery {
	return domain.CatalogQuery{Text: r.Query, Category: r.Category, Sort: domain.SortOrder(r.Sort)}
}
