package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"reliefhub/internal/api"
	"reliefhub/internal/api/handlers/http/system"
	"reliefhub/internal/config"
	"reliefhub/internal/matcher"
	"reliefhub/internal/service"
	"reliefhub/internal/storage/postgres"
	"reliefhub/internal/storage/redis"
	"reliefhub/internal/workers"
	"reliefhub/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Queue      *redis.NotificationQueue
	// Dispatcher is nil when the webhook is disabled.
	Dispatcher *service.NotificationDispatcher
	// Warmer is nil unless both the dashboard cache and its refresh interval are set.
	Warmer *workers.DashboardWarmer
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	queue := redis.NewNotificationQueue(redisClient.Client, redis.DefaultNotificationQueueKey)
	cache := redis.NewDashboardCache(redisClient)

	m := matcher.New(matcher.LinearScorer{
		Base:         cfg.Matching.BaseScore,
		PenaltyPerKM: cfg.Matching.PenaltyPerKM,
	})

	notificationSvc := service.NewNotificationService(storage.Notifications, queue, logger)
	srv := service.NewService(
		service.NewAuthService(storage.Users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger),
		service.NewResourceService(storage.Resources, notificationSvc, logger),
		service.NewRequestService(storage.Requests, storage.Resources, storage.Users, notificationSvc, m,
			service.RequestServiceOptions{
				MaxRadiusKM:       cfg.Matching.MaxRadiusKM,
				StrictTransitions: cfg.Matching.StrictTransitions,
			}, logger),
		service.NewAllocationService(storage.Allocation, storage.Requests, storage.Resources, queue, m,
			cfg.Matching.StrictTransitions, logger),
		service.NewVolunteerService(storage.Users, logger),
		notificationSvc,
		service.NewDashboardService(storage.Stats, cache, cfg.Dashboard.CacheTTL, logger),
	)

	var warmer *workers.DashboardWarmer
	if cfg.Dashboard.CacheTTL > 0 && cfg.Dashboard.RefreshInterval > 0 {
		warmer = workers.NewDashboardWarmer(srv.Dashboard, cfg.Dashboard.RefreshInterval, logger)
	}

	checks := map[string]system.Pinger{
		"postgres": storage,
		"redis":    redisClient,
	}
	httpServer := api.NewServer(ctx, cfg, logger, srv, checks)
	logger.Info("Initialized server")

	var dispatcher *service.NotificationDispatcher
	if !cfg.Webhook.Disabled {
		dispatcher = service.NewNotificationDispatcher(logger, cfg.Webhook, queue)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Queue:      queue,
		Dispatcher: dispatcher,
		Warmer:     warmer,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
