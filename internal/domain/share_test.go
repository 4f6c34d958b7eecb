package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareLink(t *testing.T) {
	q := Quote{ID: "sports-1-win", Content: "Win the day", Author: "Coach"}

	tests := []struct {
		platform SharePlatform
		target   string
		message  string
	}{
		{
			platform: ShareTwitter,
			target: "https://twitter.com/intent/tweet?text=%E2%80%9CWin+the+day%E2%80%9D+%E2%80%94+Coach" +
				"&url=https%3A%2F%2Fexample.com%2Fathletes%23sports-1-win",
		},
		{
			platform: ShareFacebook,
			target:   "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com%2Fathletes%23sports-1-win",
		},
		{platform: ShareCopy, target: "https://example.com/athletes#sports-1-win"},
		{platform: ShareNative, target: "https://example.com/athletes#sports-1-win"},
		{platform: ShareInstagram, message: InstagramFallbackMessage},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			link, err := BuildShareLink(q, tt.platform, "https://example.com/")

			require.NoError(t, err)
			assert.Equal(t, "“Win the day” — Coach", link.Text)
			assert.Equal(t, "https://example.com/athletes#sports-1-win", link.URL)
			assert.Equal(t, tt.target, link.Target)
			assert.Equal(t, tt.message, link.Message)
		})
	}
}

func TestBuildShareLink_UnknownPlatform(t *testing.T) {
	_, err := BuildShareLink(Quote{ID: "x"}, "myspace", "")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
