package domain

import (
	"fmt"
	"time"
)

// NotificationTitle is the title of every daily reminder.
const NotificationTitle = "Daily Motivation"

// Notification is a reminder delivered to a profile.
type Notification struct {
	Profile string
	Title   string
	Body    string
}

// NewQuoteNotification builds the daily reminder for a quote.
func NewQuoteNotification(profile string, q Quote) Notification {
	return Notification{
		Profile: profile,
		Title:   NotificationTitle,
		Body:    fmt.Sprintf("\"%s\" - %s", q.Content, q.Author),
	}
}

// NextOccurrence returns the next local time at which the HH:mm wall clock
// reading occurs. A time equal to now counts as today.
func NextOccurrence(now time.Time, clock string) (time.Time, error) {
	if !ValidClockTime(clock) {
		return time.Time{}, NewValidationErrorWithValue("time", "must be HH:mm", clock)
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, NewValidationErrorWithValue("time", err.Error(), clock)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}
