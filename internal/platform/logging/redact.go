package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Attribute names whose values never reach a log sink.
var redactedFields = []string{
	// upstream and admin credentials
	"password", "secret", "token", "apiKey", "api_key",
	"accessToken", "access_token", "refresh_token",
	"authorization", "cookie", "credentials",

	// notifier delivery targets carry their own token in the path
	"webhook_url", "WebhookURL", "webhookUrl",
}

var redactedPrefixes = []string{"secret", "private"}

var redactedValues = []*regexp.Regexp{
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`),
	// zenquotes and typefit keys are passed as a query parameter
	regexp.MustCompile(`[?&](key|api_key)=[^&\s]+`),
}

// DefaultRedactOptions returns the masq options applied by every handler
// built in this package.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+len(redactedPrefixes)+len(redactedValues))

	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}

	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return opts
}

// NewReplaceAttr returns a slog ReplaceAttr hook applying
// DefaultRedactOptions followed by opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
