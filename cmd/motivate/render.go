package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

const cardWidth = 64

var (
	contentStyle = lipgloss.NewStyle().Bold(true)
	authorStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// renderCard draws a quote inside a rounded border tinted with the
// profile's accent colour.
func renderCard(q domain.Quote, prefs domain.PreferenceRecord) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(prefs.AccentColor)).
		Padding(1, 2).
		Width(cardWidth)

	lines := []string{
		contentStyle.Render(q.Content),
		"",
		authorStyle.Render("~ " + q.Author),
	}

	if q.ID != "" {
		lines = append(lines, metaStyle.Render("id: "+q.ID))
	}

	return card.Render(strings.Join(lines, "\n"))
}

func renderPreferences(r domain.PreferenceRecord) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Preferences") + "\n")
	fmt.Fprintf(&b, "theme:         %s\n", r.Theme)
	fmt.Fprintf(&b, "font size:     %s\n", r.FontSize)
	fmt.Fprintf(&b, "accent colour: %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color(r.AccentColor)).Render(r.AccentColor))
	fmt.Fprintf(&b, "notifications: %t at %s\n", r.NotificationsEnabled, r.NotificationTime)
	fmt.Fprintf(&b, "favorites:     %d\n", len(r.Favorites))

	if r.LastQuoteDate != "" {
		fmt.Fprintf(&b, "last quote:    %s\n", r.LastQuoteDate)
	}

	return b.String()
}

func renderCategory(c domain.Category, count int) string {
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Bold(true).Render(c.Name)
	return fmt.Sprintf("%s %-14s %s %s", c.Emoji, c.ID, name, metaStyle.Render(fmt.Sprintf("(%d) %s", count, c.Description)))
}

func renderProviderStatus(s app.ProviderStatus) string {
	latency := s.Latency.Round(time.Millisecond)

	if s.Err != nil {
		return fmt.Sprintf("%-10s %s %s %s", s.Name, failStyle.Render("FAIL"), metaStyle.Render(latency.String()), s.Err)
	}

	return fmt.Sprintf("%-10s %s %s %q ~ %s", s.Name, okStyle.Render("OK"), metaStyle.Render(latency.String()), s.Quote.Content, s.Quote.Author)
}
