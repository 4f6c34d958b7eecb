package domain

import (
	"fmt"
	"regexp"
)

// Theme is the colour scheme preference.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// FontSize is the text size preference.
type FontSize string

// Supported font sizes.
const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Valid reports whether f is a supported font size.
func (f FontSize) Valid() bool {
	switch f {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	default:
		return false
	}
}

// Default preference values.
const (
	DefaultAccentColor      = "#6C5CE7"
	DefaultNotificationTime = "09:00"
)

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidAccentColor reports whether s is a #RGB or #RRGGBB hex colour.
func ValidAccentColor(s string) bool {
	return colorPattern.MatchString(s)
}

// ValidClockTime reports whether s is a 24h wall-clock time in HH:mm form.
func ValidClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// PreferenceRecord is everything persisted for a single profile.
type PreferenceRecord struct {
	Favorites            []Quote
	Theme                Theme
	FontSize             FontSize
	AccentColor          string
	NotificationsEnabled bool
	NotificationTime     string // HH:mm, local time

	// LastQuoteDate and LastQuote cache the quote of the day so it
	// stays stable across reloads on the same calendar day.
	LastQuoteDate string // YYYY-MM-DD
	LastQuote     *Quote
}

// DefaultPreferences returns the record used when nothing has been stored.
func DefaultPreferences() PreferenceRecord {
	return PreferenceRecord{
		Favorites:            []Quote{},
		Theme:                ThemeLight,
		FontSize:             FontSizeMedium,
		AccentColor:          DefaultAccentColor,
		NotificationsEnabled: false,
		NotificationTime:     DefaultNotificationTime,
		LastQuoteDate:        "",
		LastQuote:            nil,
	}
}

// HasFavorite reports whether a favorite with the given id exists.
func (r *PreferenceRecord) HasFavorite(id string) bool {
	for i := range r.Favorites {
		if r.Favorites[i].ID == id {
			return true
		}
	}

	return false
}

// PreferencesPatch is a partial update. Nil fields are left untouched.
type PreferencesPatch struct {
	Favorites            *[]Quote
	Theme                *Theme
	FontSize             *FontSize
	AccentColor          *string
	NotificationsEnabled *bool
	NotificationTime     *string
	LastQuoteDate        *string
	LastQuote            *Quote

	// ClearLastQuote resets LastQuote to nil. LastQuote wins when both are set.
	ClearLastQuote bool
}

// Apply shallow-merges the patch over r and returns the result.
func (p PreferencesPatch) Apply(r PreferenceRecord) PreferenceRecord {
	if p.Favorites != nil {
		r.Favorites = append([]Quote{}, (*p.Favorites)...)
	}

	if p.Theme != nil {
		r.Theme = *p.Theme
	}

	if p.FontSize != nil {
		r.FontSize = *p.FontSize
	}

	if p.AccentColor != nil {
		r.AccentColor = *p.AccentColor
	}

	if p.NotificationsEnabled != nil {
		r.NotificationsEnabled = *p.NotificationsEnabled
	}

	if p.NotificationTime != nil {
		r.NotificationTime = *p.NotificationTime
	}

	if p.LastQuoteDate != nil {
		r.LastQuoteDate = *p.LastQuoteDate
	}

	if p.ClearLastQuote {
		r.LastQuote = nil
	}

	if p.LastQuote != nil {
		q := p.LastQuote.Clone()
		r.LastQuote = &q
	}

	return r
}

// Validate checks the enumerated and formatted fields of the patch.
func (p PreferencesPatch) Validate() error {
	if p.Theme != nil && !p.Theme.Valid() {
		return NewValidationErrorWithValue("theme", "must be one of: light dark", *p.Theme)
	}

	if p.FontSize != nil && !p.FontSize.Valid() {
		return NewValidationErrorWithValue("fontSize", "must be one of: small medium large", *p.FontSize)
	}

	if p.AccentColor != nil && !ValidAccentColor(*p.AccentColor) {
		return NewValidationErrorWithValue("accentColor", "must be a hex colour like #6C5CE7", *p.AccentColor)
	}

	if p.NotificationTime != nil && !ValidClockTime(*p.NotificationTime) {
		return NewValidationErrorWithValue("notificationTime", "must be HH:mm", *p.NotificationTime)
	}

	if p.Favorites != nil {
		seen := make(map[string]struct{}, len(*p.Favorites))
		for i, q := range *p.Favorites {
			if !q.Valid() {
				return NewValidationError(fmt.Sprintf("favorites[%d]", i), "content and author are required")
			}

			if _, dup := seen[q.ID]; dup {
				return NewValidationErrorWithValue("favorites", "duplicate quote id", q.ID)
			}

			seen[q.ID] = struct{}{}
		}
	}

	return nil
}
