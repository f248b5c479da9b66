package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/api/health", http.MethodGet, 200, time.Millisecond)
		m.SubmissionReceived("new")
		m.ReviewDecided("approve", "ok")
	})
}

func TestCollectors(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("/api/clubs/{id}", http.MethodGet, 404, 2*time.Millisecond)
	m.SubmissionReceived("edit")
	m.ReviewDecided("approve", "ok")
	m.ReviewDecided("approve", "conflict")

	expected := `
# HELP clubmap_review_decisions_total Review attempts by decision and outcome.
# TYPE clubmap_review_decisions_total counter
clubmap_review_decisions_total{decision="approve",outcome="conflict"} 1
clubmap_review_decisions_total{decision="approve",outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "clubmap_review_decisions_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `clubmap_http_requests_total{method="GET",route="/api/clubs/{id}",status="404"} 1`)
	assert.Contains(t, body, `clubmap_submissions_total{type="edit"} 1`)
}
