package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewStats(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, timeout: timeout, logger: logger}
}

func (p *StatsRepo) CountRequests(ctx context.Context, filter domain.AidRequestFilter) (int64, error) {
	where := sq.Eq{}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	if filter.Urgency != "" {
		where["urgency"] = filter.Urgency
	}
	return p.count(ctx, "postgres.Stats.CountRequests", aidRequestsTable, where)
}

func (p *StatsRepo) CountResources(ctx context.Context, filter domain.ResourceFilter) (int64, error) {
	where := sq.Eq{}
	if filter.Type != "" {
		where["type"] = filter.Type
	}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	return p.count(ctx, "postgres.Stats.CountResources", resourcesTable, where)
}

func (p *StatsRepo) CountVolunteers(ctx context.Context, onlyAvailable bool) (int64, error) {
	where := sq.Eq{"role": domain.RoleVolunteer}
	if onlyAvailable {
		where["is_available"] = true
	}
	return p.count(ctx, "postgres.Stats.CountVolunteers", usersTable, where)
}

// ResourceDistribution groups every resource by type, ordered by type.
func (p *StatsRepo) ResourceDistribution(ctx context.Context) ([]domain.ResourceDistribution, error) {
	const op = "postgres.Stats.ResourceDistribution"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().
		Select("type", "SUM(quantity)::bigint AS total_quantity", "COUNT(*) AS count").
		From(resourcesTable).
		GroupBy("type").
		OrderBy("type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	dist := make([]domain.ResourceDistribution, 0)
	if err := pgxscan.Select(ctx, p.pool, &dist, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return dist, nil
}

func (p *StatsRepo) count(ctx context.Context, op, table string, where sq.Eq) (int64, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	qb := psql().Select("COUNT(*)").From(table)
	if len(where) > 0 {
		qb = qb.Where(where)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build query: %w", op, err)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
