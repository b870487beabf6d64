package app

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	out, err := provideMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, out.HTTP)

	out.ParcelsCreated.Inc()
	out.TrackingEvents.WithLabelValues("applied").Inc()
	out.HTTP.RequestsTotal.WithLabelValues("GET", "/ping", "200").Inc()

	n, err := testutil.GatherAndCount(reg, "parcels_created_total", "tracking_events_total", "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestProvideMetrics_ReusesAlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := provideMetrics(reg)
	require.NoError(t, err)
	second, err := provideMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, first.TrackingEvents, second.TrackingEvents)
	assert.Same(t, first.HTTP.RequestDuration, second.HTTP.RequestDuration)

	first.RateLimitExceeded.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.RateLimitExceeded))
}

func TestProvideMetrics_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	// same name, different label set
	reg.MustRegister(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	}, []string{"route"}))

	_, err := provideMetrics(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register rate_limit_exceeded_total")
}
