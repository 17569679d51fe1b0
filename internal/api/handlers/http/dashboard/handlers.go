package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"reliefhub/internal/api/respond"
	"reliefhub/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Aggregator interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	ResourceDistribution(ctx context.Context) ([]domain.ResourceDistribution, error)
}

type Handler struct {
	logger     *slog.Logger
	Aggregator Aggregator
}

func NewHandler(logger *slog.Logger, agg Aggregator) *Handler {
	return &Handler{logger: logger, Aggregator: agg}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Aggregator.Stats(r.Context())
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}

	h.log(r).Info("dashboard stats served",
		slog.Int64("total_requests", stats.TotalRequests),
		slog.Int64("pending_requests", stats.PendingRequests))
	respond.JSON(w, http.StatusOK, stats)
}

func (h *Handler) DashboardResourceDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.Aggregator.ResourceDistribution(r.Context())
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}

	respond.JSON(w, http.StatusOK, dist)
}
