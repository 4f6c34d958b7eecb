package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Category is a fixed content grouping used by the catalog.
type Category struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Color       string
}

// Categories is the fixed list of catalog categories, in display order.
var Categories = []Category{
	{ID: "animals", Name: "Animals", Emoji: "🐾", Description: "What we can learn from animals", Color: "#FF6B6B"},
	{ID: "philosophy", Name: "Philosophy", Emoji: "💭", Description: "Wisdom from great thinkers", Color: "#4ECDC4"},
	{ID: "psychology", Name: "Psychology", Emoji: "🧠", Description: "Understanding the human mind", Color: "#95E1D3"},
	{ID: "nature", Name: "Nature", Emoji: "🌿", Description: "Lessons from the natural world", Color: "#A8E6CF"},
	{ID: "spirituality", Name: "Spirituality", Emoji: "🧘", Description: "Inner peace and enlightenment", Color: "#FFD93D"},
	{ID: "sports", Name: "Sports", Emoji: "⚽", Description: "Victory, determination, and teamwork", Color: "#F38181"},
	{ID: "art", Name: "Art", Emoji: "🎨", Description: "Creativity and expression", Color: "#AA96DA"},
	{ID: "technology", Name: "Technology", Emoji: "🚀", Description: "Innovation and the future", Color: "#6C5CE7"},
	{ID: "ai", Name: "AI", Emoji: "💡", Description: "Innovation and creativity", Color: "#FF9A56"},
	{ID: "love", Name: "Love", Emoji: "❤️", Description: "Heartfelt wisdom and connection", Color: "#FF6B9D"},
	{ID: "success", Name: "Success", Emoji: "💼", Description: "Achievement and ambition", Color: "#A8CABA"},
	{ID: "health", Name: "Health & Fitness", Emoji: "💪", Description: "Strength, wellness, and vitality", Color: "#F093FB"},
	{ID: "travel", Name: "Travel & Adventure", Emoji: "🌍", Description: "Exploration and discovery", Color: "#4FACFE"},
}

// CategoryByID looks up a category in the fixed list.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}

	return Category{}, false
}

// CatalogQuote is a quote from the bundled catalog together with its category.
type CatalogQuote struct {
	Quote
	Category string
}

var nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// catalogIDPrefixLen is how much of the quote text contributes to its id.
const catalogIDPrefixLen = 24

// CatalogQuoteID derives the stable id of the index-th entry in the flat catalog.
// The first 24 characters of the text are folded into the id with runs of
// non-alphanumerics replaced by a single dash.
func CatalogQuoteID(category string, index int, text string) string {
	prefix := text
	if r := []rune(text); len(r) > catalogIDPrefixLen {
		prefix = string(r[:catalogIDPrefixLen])
	}

	id := category + "-" + strconv.Itoa(index) + "-" + nonAlnumRun.ReplaceAllString(prefix, "-")

	return strings.ToLower(id)
}

// SortOrder orders catalog search results by author.
type SortOrder string

// Supported sort orders.
const (
	SortAuthorAsc  SortOrder = "az"
	SortAuthorDesc SortOrder = "za"
)

// AllCategories disables the category filter in a search.
const AllCategories = "all"

// CatalogQuery filters and orders the flat catalog.
type CatalogQuery struct {
	Text     string
	Category string
	Sort     SortOrder
}

// Athlete is a mindset profile of a well-known athlete.
type Athlete struct {
	Slug            string
	Name            string
	Sport           string
	Country         string
	Image           string
	Headline        string
	Summary         string
	Themes          []string
	SignatureMoment string
	Mindsets        []string
	DailyHabits     []string
	TransferToLife  []string
	Reference       string
}
