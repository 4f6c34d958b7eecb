package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.QuotesServed.WithLabelValues(OutcomeFallback, "fallback").Inc()
	m.ProviderFailures.WithLabelValues("typefit", ReasonInvalid).Add(2)
	m.StoreFailures.WithLabelValues("write").Inc()
	m.ObserveFetch("zenquotes", time.Now().Add(-10*time.Millisecond))

	assert.InDelta(t, 1, testutil.ToFloat64(m.QuotesServed.WithLabelValues(OutcomeFallback, "fallback")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ProviderFailures.WithLabelValues("typefit", ReasonInvalid)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreFailures.WithLabelValues("write")), 0)

	count, err := testutil.GatherAndCount(reg, "motivation_provider_fetch_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}

func TestResult(t *testing.T) {
	assert.Equal(t, "success", Result(nil))
	assert.Equal(t, "failure", Result(errors.New("x")))
}
