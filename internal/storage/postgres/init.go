package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/config"
	"reliefhub/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type Postgres struct {
	Pool          *pgxpool.Pool
	Resources     *ResourceRepo
	Requests      *AidRequestRepo
	Users         *UserRepo
	Notifications *NotificationRepo
	Stats         *StatsRepo
	Allocation    *AllocationStore
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.Int("port", cfg.Postgres.Port),
		slog.String("database", cfg.Postgres.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolCfg.MinConns = cfg.Postgres.MinConns
	}
	if cfg.Postgres.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(pingCtx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := New(pool, cfg.Store.QueryTimeout, logger)

	logger.Info("Postgres repositories created")
	return pg, nil
}

// New wires every repository on an existing pool.
func New(pool *pgxpool.Pool, queryTimeout time.Duration, logger *slog.Logger) *Postgres {
	return &Postgres{
		Pool:          pool,
		Resources:     NewResourceRepo(pool, queryTimeout, logger),
		Requests:      NewAidRequestRepo(pool, queryTimeout, logger),
		Users:         NewUserRepo(pool, queryTimeout, logger),
		Notifications: NewNotificationRepo(pool, queryTimeout, logger),
		Stats:         NewStats(pool, queryTimeout, logger),
		Allocation:    NewAllocationStore(pool, queryTimeout, logger),
	}
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, "postgres.Migrate", err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

func (p *Postgres) Close() {
	p.Pool.Close()
}
