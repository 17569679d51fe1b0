// Package respond writes JSON bodies and maps domain errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"
)

// RetryAfterSeconds is sent with 503 responses caused by store timeouts.
const RetryAfterSeconds = "1"

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, errorBody{Error: msg})
}

// Status maps err to an HTTP status and a client-safe message.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest, clientDetail(err, e.ErrInvalidInput)
	case errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, e.ErrInvalidCoordinates.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, domain.ErrInvalidTransition.Error()
	case errors.Is(err, e.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "already exists"
	case errors.Is(err, e.ErrDeadline), errors.Is(err, e.ErrCanceled):
		return http.StatusServiceUnavailable, "temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Error logs err and writes the mapped response.
func Error(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	code, msg := Status(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		l.Error("handler error", attrs...)
	} else {
		l.Warn("handler error", attrs...)
	}

	if code == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", RetryAfterSeconds)
	}
	Message(w, code, msg)
}

// clientDetail keeps the part of the message starting at the sentinel, which
// drops internal op prefixes but keeps validation details.
func clientDetail(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}
