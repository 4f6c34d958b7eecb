package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogQuoteID(t *testing.T) {
	tests := []struct {
		category string
		index    int
		text     string
		want     string
	}{
		{"sports", 0, "Hard work beats talent when talent doesn't work hard.", "sports-0-hard-work-beats-talent-w"},
		{"love", 12, "Love", "love-12-love"},
		{"ai", 3, "  AI -- is here!  ", "ai-3--ai-is-here-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CatalogQuoteID(tt.category, tt.index, tt.text))
		})
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID("health")
	assert.True(t, ok)
	assert.Equal(t, "Health & Fitness", c.Name)

	_, ok = CategoryByID("cooking")
	assert.False(t, ok)

	assert.Len(t, Categories, 13)
}
