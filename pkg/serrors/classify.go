package serrors

import (
	"context"
	"errors"
	"net/http"
)

const (
	internalMessage = "internal error"
	timeoutMessage  = "request timed out"
)

// Classified is the boundary rendering of an error.
type Classified struct {
	Kind    Kind
	Status  int
	Message string
	Data    []string
}

// statuses maps every kind to its HTTP status. NotFound renders as 422 since
// every lookup that can miss concerns an entity referenced by the request
// body rather than the addressed resource.
var statuses = map[Kind]int{ //nolint: gochecknoglobals
	ErrValidation:   http.StatusUnprocessableEntity,
	ErrConflict:     http.StatusUnprocessableEntity,
	ErrNotFound:     http.StatusUnprocessableEntity,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrStorage:      http.StatusInternalServerError,
	ErrBadRequest:   http.StatusBadRequest,
	ErrTimeout:      http.StatusGatewayTimeout,
	ErrInternal:     http.StatusInternalServerError,
}

// defaultMessages is used when a semantic error carries no message of its own.
var defaultMessages = map[Kind]string{ //nolint: gochecknoglobals
	ErrValidation:   "Validation failed.",
	ErrConflict:     "resource already exists",
	ErrNotFound:     "resource not found",
	ErrUnauthorized: "unauthorized",
	ErrStorage:      internalMessage,
	ErrBadRequest:   "bad request",
	ErrTimeout:      timeoutMessage,
	ErrInternal:     internalMessage,
}

// Classify maps any error to its kind, status, public message and detail.
// Unclassified errors become ErrInternal; a bare context deadline becomes
// ErrTimeout. Causes are never part of the public message.
func Classify(err error) Classified {
	var semantic *Error
	if errors.As(err, &semantic) && semantic.Kind() != nil {
		return classifySemantic(semantic)
	}

	var k Kind
	if errors.As(err, &k) {
		return Classified{Kind: k, Status: statusOf(k), Message: messageOf(k, "")}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Classified{Kind: ErrTimeout, Status: http.StatusGatewayTimeout, Message: timeoutMessage}
	}

	return Classified{Kind: ErrInternal, Status: http.StatusInternalServerError, Message: internalMessage}
}

func classifySemantic(e *Error) Classified {
	k := e.Kind()

	return Classified{
		Kind:    k,
		Status:  statusOf(k),
		Message: messageOf(k, e.Message()),
		Data:    e.Data(),
	}
}

func statusOf(k Kind) int {
	if s, ok := statuses[k]; ok {
		return s
	}

	return http.StatusInternalServerError
}

func messageOf(k Kind, msg string) string {
	if k == ErrInternal {
		return internalMessage
	}
	if k == ErrTimeout && msg == "" {
		return timeoutMessage
	}
	if msg != "" {
		return msg
	}
	if m, ok := defaultMessages[k]; ok {
		return m
	}

	return internalMessage
}
