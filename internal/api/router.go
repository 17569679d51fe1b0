package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"reliefhub/internal/api/handlers/http/auth"
	"reliefhub/internal/api/handlers/http/dashboard"
	"reliefhub/internal/api/handlers/http/notifications"
	"reliefhub/internal/api/handlers/http/relief"
	"reliefhub/internal/api/handlers/http/system"
	"reliefhub/internal/config"
	"reliefhub/internal/domain"
	"reliefhub/internal/middleware"
	"reliefhub/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Auth          *auth.Handler
	Relief        *relief.Handler
	Notifications *notifications.Handler
	Dashboard     *dashboard.Handler
	System        *system.Handler
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	h := Handlers{
		Auth:          auth.NewHandler(logger, svc.Auth),
		Relief:        relief.NewHandler(logger, svc.Resources, svc.Requests, svc.Allocation, svc.Volunteers),
		Notifications: notifications.NewHandler(logger, svc.Notifications),
		Dashboard:     dashboard.NewHandler(logger, svc.Dashboard),
		System:        system.NewHandler(logger, checks),
	}

	r := InitRouter(ctx, h, svc.Auth, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(ctx context.Context, h Handlers, tokens middleware.TokenParser, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	coordinators := middleware.RequireRole(logger, domain.RoleAdmin, domain.RoleNGO)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))
			ar.Post("/register", h.Auth.Register)
			ar.Post("/login", h.Auth.Login)
		})

		api.Get("/health", h.System.SystemHealth)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Authenticate(tokens, logger))
			pr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			pr.Route("/resources", func(rr chi.Router) {
				rr.Get("/", h.Relief.ResourceList)
				rr.Post("/", h.Relief.ResourceCreate)

				rr.Route("/{id}", func(ir chi.Router) {
					ir.Get("/", h.Relief.ResourceGet)
					ir.Put("/", h.Relief.ResourceUpdate)
					ir.With(coordinators).Delete("/", h.Relief.ResourceDelete)
				})
			})

			pr.Route("/requests", func(rr chi.Router) {
				rr.Get("/", h.Relief.RequestList)
				rr.Post("/", h.Relief.RequestCreate)

				rr.Route("/{id}", func(ir chi.Router) {
					ir.Get("/", h.Relief.RequestGet)
					ir.Put("/", h.Relief.RequestUpdate)
					ir.Get("/matches", h.Relief.RequestMatches)
					ir.Post("/volunteer-matches", h.Relief.RequestVolunteerMatches)
					ir.With(coordinators).Post("/allocate", h.Relief.RequestAllocate)
				})
			})

			pr.With(coordinators).Get("/allocations/plan", h.Relief.AllocationPlan)

			pr.Route("/volunteers", func(vr chi.Router) {
				vr.Get("/", h.Relief.VolunteerList)
				vr.Put("/{id}/availability", h.Relief.VolunteerAvailability)
			})

			pr.Route("/notifications", func(nr chi.Router) {
				nr.Get("/", h.Notifications.NotificationList)
				nr.Put("/{id}/read", h.Notifications.NotificationRead)
			})

			pr.Route("/dashboard", func(dr chi.Router) {
				dr.Get("/stats", h.Dashboard.DashboardStats)
				dr.Get("/resource-distribution", h.Dashboard.DashboardResourceDistribution)
			})
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
