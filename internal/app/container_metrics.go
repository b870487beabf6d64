package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fastkart-parcels/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	ParcelsCreated    prometheus.Counter `name:"parcels_created_total"`
	TrackingEvents    *prometheus.CounterVec
	HTTP              *metrics.HTTP
}

// provideMetrics registers the service collectors. A collector that is already
// registered (a second container in the same process) is reused.
func provideMetrics(reg prometheus.Registerer) (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceeded, err = register(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return out, err
	}
	if out.ParcelsCreated, err = register(reg, "parcels_created_total", metrics.NewParcelsCreatedTotal()); err != nil {
		return out, err
	}
	if out.TrackingEvents, err = register(reg, "tracking_events_total", metrics.NewTrackingEventsTotal()); err != nil {
		return out, err
	}

	h := metrics.NewHTTP()
	if h.RequestsTotal, err = register(reg, "http_requests_total", h.RequestsTotal); err != nil {
		return out, err
	}
	if h.RequestDuration, err = register(reg, "http_request_duration_seconds", h.RequestDuration); err != nil {
		return out, err
	}
	out.HTTP = h
	return out, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("register %s: %w", name, err)
}
