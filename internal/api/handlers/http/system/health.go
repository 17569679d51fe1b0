package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"reliefhub/internal/api/respond"
)

const healthCheckTimeout = 2 * time.Second

//go:generate mockgen -source=health.go -destination=mocks/mock.go
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	checks map[string]Pinger
}

// NewHandler takes named dependencies to probe. Nil pingers are skipped.
func NewHandler(logger *slog.Logger, checks map[string]Pinger) *Handler {
	live := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			live[name] = p
		}
	}
	return &Handler{logger: logger, checks: live}
}

type healthBody struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	body := healthBody{Status: "OK", Timestamp: time.Now().UTC(), Checks: map[string]string{}}
	code := http.StatusOK

	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.logger.Error("health check failed", slog.String("check", name), slog.Any("error", err))
			body.Checks[name] = "down"
			body.Status = "DEGRADED"
			code = http.StatusServiceUnavailable
			continue
		}
		body.Checks[name] = "up"
	}

	respond.JSON(w, code, body)
}
