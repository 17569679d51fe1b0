package notifications

import (
	"context"
	"log/slog"
	"net/http"

	"reliefhub/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Inbox interface {
	ListFor(ctx context.Context, p domain.Principal) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Notification, error)
}

type Handler struct {
	logger *slog.Logger
	Inbox  Inbox
}

func NewHandler(logger *slog.Logger, inbox Inbox) *Handler {
	return &Handler{logger: logger, Inbox: inbox}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) NotificationList(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	list, err := h.Inbox.ListFor(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("notifications listed", slog.String("user_id", p.UserID.String()), slog.Int("count", len(list)))
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) NotificationRead(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	n, err := h.Inbox.MarkRead(r.Context(), p, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, n)
}
