package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefhub/internal/middleware"
	"reliefhub/pkg/e"
)

type payload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"Food","quantity":3}`, false},
		{"empty", ``, true},
		{"malformed", `{"name":`, true},
		{"unknown field", `{"name":"Food","owner":"me"}`, true},
		{"trailing object", `{"name":"Food"}{"name":"Water"}`, true},
		{"wrong type", `{"quantity":"three"}`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dst payload
			err := middleware.DecodeJSON(rr, req, &dst)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, payload{Name: "Food", Quantity: 3}, dst)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, e.ErrInvalidInput), "expected invalid input, got %v", err)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	t.Parallel()

	body := `{"name":"` + strings.Repeat("x", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()

	var dst payload
	err := middleware.DecodeJSON(rr, req, &dst)

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}
