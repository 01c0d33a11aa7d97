package controller_test

import (
	"net/http"
	"net/http/httptest"
	"petregistry/pkg/controller"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithTimeout(t *testing.T) {
	const body = `{"message":"request timed out","status":503}`
	mw := controller.WithTimeout(20*time.Millisecond, body)

	t.Run("slow handler", func(t *testing.T) {
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/users", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.JSONEq(t, body, rec.Body.String())
	})

	t.Run("fast handler", func(t *testing.T) {
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Handled", "yes")
			w.WriteHeader(http.StatusCreated)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/users", nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "yes", rec.Header().Get("X-Handled"))
	})
}
