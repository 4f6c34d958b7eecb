// Package notify delivers daily reminders.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients/acl"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// Supported drivers.
const (
	DriverLog     = "log"
	DriverWebhook = "webhook"
)

// New returns the notifier selected by cfg. Disabled notifications yield
// a notifier whose capability is Unavailable.
func New(cfg config.NotificationsConfig, clientCfg *config.ClientConfig, logger *slog.Logger) (ports.Notifier, error) {
	if !cfg.Enabled {
		return Disabled{}, nil
	}

	switch cfg.Driver {
	case DriverLog, "":
		return NewLog(logger), nil
	case DriverWebhook:
		client, err := clients.New(clients.NewConfig("notification-webhook", cfg.WebhookURL, clientCfg, logger))
		if err != nil {
			return nil, fmt.Errorf("creating webhook client: %w", err)
		}

		return NewWebhook(client), nil
	default:
		return nil, fmt.Errorf("unknown notification driver %q", cfg.Driver)
	}
}

// Log writes reminders to the structured log.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log notifier.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger.With(slog.String("component", "notify.Log"))}
}

// Notify implements ports.Notifier.
func (l *Log) Notify(ctx context.Context, n domain.Notification) error {
	l.logger.InfoContext(ctx, n.Title,
		slog.String("profile", n.Profile),
		slog.String("body", n.Body),
	)

	return nil
}

// Capability implements ports.Notifier.
func (l *Log) Capability() ports.Capability { return ports.Available }

// Webhook posts reminders as JSON to a URL.
type Webhook struct {
	client *clients.Client
}

// NewWebhook creates a webhook notifier. The client's base URL is the
// webhook endpoint.
func NewWebhook(client *clients.Client) *Webhook {
	return &Webhook{client: client}
}

type webhookPayload struct {
	Profile string `json:"profile"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Notify implements ports.Notifier.
func (w *Webhook) Notify(ctx context.Context, n domain.Notification) error {
	raw, err := json.Marshal(webhookPayload(n))
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	resp, err := w.client.Post(ctx, "", bytes.NewReader(raw))
	if err != nil {
		return acl.MapHTTPError(nil, err, w.client.Name(), "deliver notification")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return acl.MapHTTPError(resp, nil, w.client.Name(), "deliver notification")
	}

	return nil
}

// Capability implements ports.Notifier.
func (w *Webhook) Capability() ports.Capability { return ports.Available }

// Name implements ports.HealthChecker.
func (w *Webhook) Name() string { return w.client.Name() }

// Check implements ports.HealthChecker.
func (w *Webhook) Check(ctx context.Context) error { return w.client.Check(ctx) }

// Disabled drops every reminder.
type Disabled struct{}

// Notify implements ports.Notifier.
func (Disabled) Notify(context.Context, domain.Notification) error { return nil }

// Capability implements ports.Notifier.
func (Disabled) Capability() ports.Capability { return ports.Unavailable }
