package providers

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware guards an endpoint against event bursts. The
// accessibility watcher can emit foreground-change events far faster than
// a human switches apps; excess events are answered with 429 and dropped.
func RateLimitMiddleware(rps float64, burst int, next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
