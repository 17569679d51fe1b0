package auth

import (
	"context"
	"log/slog"
	"net/http"

	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Auth   Authenticator
}

func NewHandler(logger *slog.Logger, auth Authenticator) *Handler {
	return &Handler{logger: logger, Auth: auth}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Register", slog.String("remote", r.RemoteAddr))

	var req domain.RegisterRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user registered", slog.String("user_id", resp.User.ID.String()))
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Login", slog.String("remote", r.RemoteAddr))

	var req domain.LoginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user logged in", slog.String("user_id", resp.User.ID.String()))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}
