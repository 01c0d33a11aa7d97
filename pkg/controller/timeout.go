package controller

import (
	"net/http"
	"time"
)

// WithTimeout bounds each request to d. When d elapses the client receives
// 503 with body, sent as JSON.
func WithTimeout(d time.Duration, body string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, body)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}
