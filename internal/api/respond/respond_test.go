package respond_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"reliefhub/internal/api/respond"
	"reliefhub/internal/domain"
	"reliefhub/pkg/e"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation keeps detail", fmt.Errorf("service.Resource.Create: %w", e.Invalid(errors.New("type is required"))),
			http.StatusBadRequest, "invalid input: type is required"},
		{"coordinates", e.ErrInvalidCoordinates, http.StatusBadRequest, "invalid coordinates"},
		{"unauthorized", e.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", e.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"not found hides op", fmt.Errorf("postgres.AidRequest.Get: %w", e.ErrNotFound), http.StatusNotFound, "not found"},
		{"transition", fmt.Errorf("%w: fulfilled -> pending: %w", domain.ErrInvalidTransition, e.ErrConflict),
			http.StatusConflict, domain.ErrInvalidTransition.Error()},
		{"conflict", e.ErrConflict, http.StatusConflict, "conflict"},
		{"unique", e.ErrUniqueViolation, http.StatusConflict, "already exists"},
		{"deadline", e.ErrDeadline, http.StatusServiceUnavailable, "temporarily unavailable"},
		{"unknown", context.Canceled, http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, msg := respond.Status(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestError_RetryAfterOnUnavailable(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rr := httptest.NewRecorder()
	respond.Error(rr, httptest.NewRequest(http.MethodGet, "/x", nil), logger, e.ErrDeadline)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, respond.RetryAfterSeconds, rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"temporarily unavailable"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	respond.Error(rr, httptest.NewRequest(http.MethodGet, "/x", nil), logger, e.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("Retry-After"))
}
