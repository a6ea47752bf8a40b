package api

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/edinacircular/circular-server/internal/http/response"
	"github.com/edinacircular/circular-server/internal/ratelimit"
)

// RateLimitMiddleware rate limits POST requests to the given paths by client
// IP and answers 429 once a client exceeds its budget. Other requests pass
// through untouched.
func RateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger, paths ...string) func(http.Handler) http.Handler {
	limited := make(map[string]bool, len(paths))
	for _, p := range paths {
		limited[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || !limited[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			key := getClientIP(r)
			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				response.TooManyRequests(w, "Too many requests. Please try again later.", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the request's remote IP without the port. The RealIP
// middleware has already applied X-Forwarded-For and X-Real-IP.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
