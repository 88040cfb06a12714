package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveImport(t *testing.T) {
	m := New()

	m.ObserveImport("success", 45, 0.2)
	m.ObserveImport("failure", 0, 0.1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("failure")))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.RecordsIngested))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveImport("success", 10, 0.1)
	m.HTTPRequestsTotal.WithLabelValues("GET", "2xx").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "laborpulse_imports_total")
	assert.Contains(t, body, "laborpulse_records_ingested_total")
	assert.Contains(t, body, "laborpulse_http_requests_total")
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := New()
	b := New()

	a.ObserveImport("success", 1, 0.1)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ImportsTotal.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ImportsTotal.WithLabelValues("success")))
}
