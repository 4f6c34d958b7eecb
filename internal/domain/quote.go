package domain

// UnknownAuthor is the attribution used when a source does not name an author.
const UnknownAuthor = "Unknown"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the identifier assigned by the source that produced the quote.
	// Sources without stable identifiers may mint a new ID on every fetch.
	ID string

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// Tags are categories or themes associated with the quote.
	Tags []string
}

// Valid reports whether the quote may be shown or stored.
// A quote needs both content and an author.
func (q *Quote) Valid() bool {
	return q != nil && q.Content != "" && q.Author != ""
}

// Clone returns a deep copy so callers can't alias the tag slice.
func (q Quote) Clone() Quote {
	if q.Tags != nil {
		q.Tags = append([]string(nil), q.Tags...)
	}

	return q
}
