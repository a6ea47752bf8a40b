package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/logger"
	"github.com/edinacircular/circular-server/internal/ratelimit"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var fromCtx *slog.Logger
	h := middleware.RequestID(RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = logger.FromContext(r.Context(), nil)
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items?q=x", nil))

	require.NotNil(t, fromCtx)
	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/items?q=x"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"http_request_id"`)
}

func TestRateLimitMiddleware_OnlyLimitedPaths(t *testing.T) {
	limiter := ratelimit.New(ratelimit.PerMinute(1), 1, time.Minute)
	t.Cleanup(limiter.Stop)

	h := RateLimitMiddleware(limiter, slog.New(slog.DiscardHandler), "/login")(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	do := func(method, path string) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/login"))
	assert.Equal(t, http.StatusTooManyRequests, do(http.MethodPost, "/login"))
	assert.Equal(t, http.StatusNoContent, do(http.MethodGet, "/login"))
	assert.Equal(t, http.StatusNoContent, do(http.MethodPost, "/items"))
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:5555"
	assert.Equal(t, "203.0.113.7", getClientIP(r))

	r.RemoteAddr = "203.0.113.7"
	assert.Equal(t, "203.0.113.7", getClientIP(r))
}
