// Package v1handler serves the v1 JSON API on top of the registry.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"petregistry/internal/auth"
	"petregistry/internal/registry"
	"petregistry/pkg/logger"
	"petregistry/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// Authenticator resolves a bearer token into an identity. It never fails:
// an invalid token yields an unauthenticated auth.Context.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) auth.Context
}

type Deps struct {
	Registry registry.Registry
	Auth     Authenticator
}

type Handler struct {
	registry registry.Registry
	auth     Authenticator
}

func New(deps Deps) *Handler {
	return &Handler{registry: deps.Registry, auth: deps.Auth}
}

// Routes registers the v1 operations on r. Every route passes through the
// soft authentication middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Use(h.WithAuth)

	r.Post("/login", h.Login)
	r.Post("/users", h.CreateUser)
	r.Post("/pet-types", h.CreatePetType)
	r.Post("/pet-properties", h.CreatePetProperty)
	r.Post("/pets", h.AddPetToUser)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Data    []string `json:"data,omitempty"`
}

// NewError renders err as an ErrorResponse. Server side failures are logged
// with their cause; the cause never reaches the response.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	c := serrors.Classify(err)

	if c.Status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.String("kind", c.Kind.Error()), zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.String("kind", c.Kind.Error()), zap.Error(err))
	}

	return &ErrorResponse{Message: c.Message, Status: c.Status, Data: c.Data}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.Status, res)
}

var errTrailingData = errors.New("unexpected data after request body")

// decode reads a single JSON value from the request body into a T.
func decode[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var in T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		return in, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return in, serrors.Wrap(serrors.ErrBadRequest, errTrailingData, "invalid request body")
	}

	return in, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
