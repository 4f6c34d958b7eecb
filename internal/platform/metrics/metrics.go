// Package metrics defines the Prometheus collectors for quote selection,
// preference storage and notification delivery.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "motivation"

// Quote outcomes.
const (
	OutcomeProvider = "provider"
	OutcomeFallback = "fallback"
)

// Provider failure reasons.
const (
	ReasonError   = "error"
	ReasonInvalid = "invalid"
	ReasonRecent  = "recent"
)

// Metrics holds every domain collector.
type Metrics struct {
	QuotesServed      *prometheus.CounterVec
	ProviderFailures  *prometheus.CounterVec
	ProviderLatency   *prometheus.HistogramVec
	StoreFailures     *prometheus.CounterVec
	NotificationsSent *prometheus.CounterVec
	CatalogReloads    *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		QuotesServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_served_total",
			Help:      "Quotes returned by the aggregator, by outcome and source.",
		}, []string{"outcome", "source"}),

		ProviderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_rejections_total",
			Help:      "Provider attempts that did not yield a quote, by reason.",
		}, []string{"provider", "reason"}),

		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_fetch_seconds",
			Help:      "Latency of provider fetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),

		StoreFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preference_store_failures_total",
			Help:      "Swallowed preference store failures, by operation.",
		}, []string{"op"}),

		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Daily reminders fired, by result.",
		}, []string{"result"}),

		CatalogReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reloads from disk, by result.",
		}, []string{"result"}),
	}
}

// NewUnregistered returns collectors attached to a private registry.
// Used by tests and the CLI, where nothing scrapes the default registry.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveFetch records the latency of a provider fetch that started at start.
func (m *Metrics) ObserveFetch(provider string, start time.Time) {
	m.ProviderLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

// Result maps an error to a "success" or "failure" label.
func Result(err error) string {
	if err != nil {
		return "failure"
	}

	return "success"
}
