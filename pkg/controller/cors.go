package controller

import (
	"net/http"
	"strings"
)

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
	// PreflightStatus is written for OPTIONS requests, which never reach the
	// wrapped handler.
	PreflightStatus int
}

// DefaultCORSOptions allows any origin to call the JSON API with a bearer token.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		AllowOrigin: "*",
		AllowMethods: []string{
			http.MethodOptions, http.MethodGet, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		PreflightStatus: http.StatusOK,
	}
}

// CORS returns a middleware that sets the configured CORS headers on every
// response and short-circuits preflight requests.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowMethods, ", ")
	headers := strings.Join(opts.AllowHeaders, ", ")
	status := opts.PreflightStatus
	if status == 0 {
		status = http.StatusNoContent
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", opts.AllowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)

			if r.Method == http.MethodOptions {
				w.WriteHeader(status)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
