package system_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"reliefhub/internal/api/handlers/http/system"
	mock_system "reliefhub/internal/api/handlers/http/system/mocks"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		redisErr  error
		code      int
		status    string
		redisWant string
	}{
		{"all up", nil, http.StatusOK, "OK", "up"},
		{"redis down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable, "DEGRADED", "down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			pg := mock_system.NewMockPinger(ctrl)
			rdb := mock_system.NewMockPinger(ctrl)
			pg.EXPECT().Ping(gomock.Any()).Return(nil)
			rdb.EXPECT().Ping(gomock.Any()).Return(tt.redisErr)

			h := system.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]system.Pinger{
				"postgres": pg,
				"redis":    rdb,
			})

			rr := httptest.NewRecorder()
			h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			if rr.Code != tt.code {
				t.Fatalf("expected %d got %d", tt.code, rr.Code)
			}
			var got healthBody
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if got.Status != tt.status || got.Checks["redis"] != tt.redisWant || got.Checks["postgres"] != "up" {
				t.Fatalf("unexpected body: %+v", got)
			}
		})
	}
}

func TestSystemHealth_NoChecks(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]system.Pinger{"redis": nil})

	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}
