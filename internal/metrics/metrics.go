package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewTrackingEventsTotal returns a Prometheus counter vec of processed rider events by result
func NewTrackingEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracking_events_total",
		Help: "Total number of rider tracking events by processing result",
	}, []string{"result"})
}

// NewParcelsCreatedTotal returns a Prometheus counter for the number of parcels registered through the API
func NewParcelsCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parcels_created_total",
		Help: "Total number of parcels registered through the API",
	})
}

// HTTP groups request metrics recorded by the observability middleware.
type HTTP struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTP returns unregistered HTTP request metrics labelled by method, route pattern and status.
func NewHTTP() *HTTP {
	labels := []string{"method", "path", "status"}
	return &HTTP{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// Collectors returns every collector of m for registration.
func (m *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.RequestsTotal, m.RequestDuration}
}
