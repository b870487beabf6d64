package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/metrics"
	testlog "fastkart-parcels/internal/testutil"
)

func TestObservability_UsesRoutePatternForLabels(t *testing.T) {
	t.Parallel()

	m := metrics.NewHTTP()
	rec := testlog.New()

	pattern := "/api/parcels/{id}"
	r := chi.NewRouter()
	r.Use(Observability(rec.Logger(), m))
	r.Get(pattern, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/parcels/123", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	require.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, pattern, "204")))
	require.Equal(t, uint64(1), histogramCount(t, m.RequestDuration, http.MethodGet, pattern, "204"))

	e, ok := rec.Find("info", "http request")
	require.True(t, ok)
	path, _ := e.Field("path")
	require.Equal(t, pattern, path)
	status, _ := e.Field("status")
	require.Equal(t, http.StatusNoContent, status)
}

func TestObservability_ImplicitOKAndNilMetrics(t *testing.T) {
	t.Parallel()

	h := Observability(logx.Nop(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func histogramCount(t *testing.T, hv *prometheus.HistogramVec, method, path, status string) uint64 {
	t.Helper()

	obs, err := hv.GetMetricWithLabelValues(method, path, status)
	require.NoError(t, err)

	metric, ok := obs.(prometheus.Metric)
	require.True(t, ok, "must implement prometheus.Metric")

	m := &dto.Metric{}
	require.NoError(t, metric.Write(m))

	h := m.GetHistogram()
	require.NotNil(t, h)
	return h.GetSampleCount()
}
