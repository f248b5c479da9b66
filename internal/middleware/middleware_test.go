package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/clubmap/internal/auth"
	"github.com/dangerclosesec/clubmap/internal/metrics"
	"github.com/dangerclosesec/clubmap/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func whoami(w http.ResponseWriter, r *http.Request) {
	reviewer, ok := middleware.ReviewerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = io.WriteString(w, reviewer.Username)
}

func TestRequireReviewer(t *testing.T) {
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	token, err := tokens.Generate(1, "alice", "super_admin")
	require.NoError(t, err)

	other, err := auth.NewTokenManager("other_secret", time.Hour).Generate(1, "mallory", "super_admin")
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		forwarded string
		whitelist []string
		status    int
		code      string
	}{
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, status: http.StatusOK},
		{name: "missing header", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "foreign signature", header: "Bearer " + other, status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "whitelisted ip", header: "Bearer " + token, forwarded: "203.0.113.5, 10.0.0.1", whitelist: []string{"203.0.113.5"}, status: http.StatusOK},
		{name: "ip not whitelisted", header: "Bearer " + token, forwarded: "198.51.100.7", whitelist: []string{"203.0.113.5"}, status: http.StatusForbidden, code: "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.RequireReviewer(tokens, tt.whitelist)(http.HandlerFunc(whoami))

			req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.code == "" {
				assert.Equal(t, "alice", rec.Body.String())
				return
			}
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	assert.Equal(t, "192.0.2.1", middleware.ClientIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", middleware.ClientIP(req))
}

func TestRecoverer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := middleware.Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "internal_error", env.Error.Code)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestInstrument(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Instrument(m))
	r.Get("/api/clubs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	for _, path := range []string{"/api/clubs/1", "/api/clubs/2", "/api/health"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	mfs, err := m.Registry().Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "clubmap_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			counts[labels["route"]+" "+labels["status"]] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 2.0, counts["/api/clubs/{id} 404"])
	assert.Equal(t, 1.0, counts["/api/health 200"])

	series, err := testutil.GatherAndCount(m.Registry(), "clubmap_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestRateLimit(t *testing.T) {
	limited := middleware.RateLimit(middleware.NewIPRateLimiter(2, time.Minute))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/submissions", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, call("203.0.113.7").Code)
	assert.Equal(t, http.StatusNoContent, call("203.0.113.7, 10.0.0.1").Code)

	rec := call("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "rate_limited", env.Error.Code)

	assert.Equal(t, http.StatusNoContent, call("198.51.100.9").Code, "each client has its own budget")
}

func TestTimeout(t *testing.T) {
	timeout := middleware.Timeout(10 * time.Millisecond)

	t.Run("abandoned request gets an envelope", func(t *testing.T) {
		h := timeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clubs", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "timeout", env.Error.Code)
	})

	t.Run("written responses are left alone", func(t *testing.T) {
		h := timeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clubs", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("fast handlers pass through", func(t *testing.T) {
		h := timeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline := r.Context().Deadline()
			assert.True(t, hasDeadline)
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clubs", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
