package domain

import (
	"net/url"
	"strings"
)

// SharePlatform is a destination a quote can be shared to.
type SharePlatform string

// Supported share platforms.
const (
	ShareTwitter   SharePlatform = "twitter"
	ShareFacebook  SharePlatform = "facebook"
	ShareInstagram SharePlatform = "instagram"
	ShareCopy      SharePlatform = "copy"
	ShareNative    SharePlatform = "native"
)

// InstagramFallbackMessage is shown when a quote is shared to Instagram.
const InstagramFallbackMessage = "Instagram sharing is not supported directly. Link copied for you!"

// ShareLink describes how a quote is handed to a platform.
type ShareLink struct {
	Platform SharePlatform
	Text     string
	URL      string

	// Target is the URL to open. When empty the caller copies URL instead.
	Target string

	// Message is an optional note for the user, set for fallbacks.
	Message string
}

// ShareText formats a quote the way it appears in shared posts.
func ShareText(q Quote) string {
	return "“" + q.Content + "” — " + q.Author
}

// BuildShareLink produces the share payload for a quote.
// The permalink points at the quote's anchor on the athletes page under baseURL.
func BuildShareLink(q Quote, platform SharePlatform, baseURL string) (ShareLink, error) {
	link := ShareLink{
		Platform: platform,
		Text:     ShareText(q),
		URL:      strings.TrimRight(baseURL, "/") + "/athletes#" + q.ID,
	}

	text := url.QueryEscape(link.Text)
	encodedURL := url.QueryEscape(link.URL)

	switch platform {
	case ShareTwitter:
		link.Target = "https://twitter.com/intent/tweet?text=" + text + "&url=" + encodedURL
	case ShareFacebook:
		link.Target = "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL
	case ShareCopy, ShareNative:
		link.Target = link.URL
	case ShareInstagram:
		link.Message = InstagramFallbackMessage
	default:
		return ShareLink{}, NewValidationErrorWithValue("platform",
			"must be one of: twitter facebook instagram copy native", string(platform))
	}

	return link, nil
}
