package v1handler

import (
	"context"
	"net/http"
	"petregistry/internal/auth"
)

type authContextKey struct{}

// WithAuth attaches the identity carried by the request's bearer token to
// its context. Requests without a valid token pass through unauthenticated;
// operations that need a user reject them.
func (h *Handler) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ac auth.Context
		if h.auth != nil {
			ac = h.auth.Authenticate(r.Context(), auth.BearerToken(r.Header.Get("Authorization")))
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authContextKey{}, ac)))
	})
}

// AuthContext returns the identity stored by WithAuth. It is unauthenticated
// when the middleware did not run.
func AuthContext(ctx context.Context) auth.Context {
	ac, _ := ctx.Value(authContextKey{}).(auth.Context)

	return ac
}
