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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const resourcesTable = "resources"

var resourceColumns = []string{
	"id", "type", "quantity", "unit", "location_name", latColumn, lngColumn,
	"status", "provided_by", "expiry_date", "created_at",
}

type resourceRow struct {
	ID           uuid.UUID             `db:"id"`
	Type         string                `db:"type"`
	Quantity     int                   `db:"quantity"`
	Unit         string                `db:"unit"`
	LocationName string                `db:"location_name"`
	Lat          float64               `db:"lat"`
	Lng          float64               `db:"lng"`
	Status       domain.ResourceStatus `db:"status"`
	ProvidedBy   uuid.UUID             `db:"provided_by"`
	ExpiryDate   *time.Time            `db:"expiry_date"`
	CreatedAt    time.Time             `db:"created_at"`
}

func (r resourceRow) toDomain() domain.Resource {
	return domain.Resource{
		ID:         r.ID,
		Type:       r.Type,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		Location:   domain.Location{Name: r.LocationName, Lat: r.Lat, Lng: r.Lng},
		Status:     r.Status,
		ProvidedBy: r.ProvidedBy,
		ExpiryDate: r.ExpiryDate,
		CreatedAt:  r.CreatedAt,
	}
}

type ResourceRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewResourceRepo(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *ResourceRepo {
	return &ResourceRepo{pool: pool, timeout: timeout, logger: logger}
}

func (p *ResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	const op = "postgres.Resource.Create"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	if res.Status == "" {
		res.Status = domain.ResourceAvailable
	}
	if res.Unit == "" {
		res.Unit = domain.DefaultUnit
	}

	query, args, err := psql().Insert(resourcesTable).
		Columns("id", "type", "quantity", "unit", "location_name", "geo_point", "status", "provided_by", "expiry_date", "created_at").
		Values(res.ID, res.Type, res.Quantity, res.Unit, res.Location.Name, point(res.Location.Lat, res.Location.Lng),
			res.Status, res.ProvidedBy, res.ExpiryDate, res.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ResourceRepo) List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	const op = "postgres.Resource.List"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	qb := psql().Select(resourceColumns...).From(resourcesTable).OrderBy("created_at DESC")
	if filter.Type != "" {
		qb = qb.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []resourceRow
	if err := pgxscan.Select(ctx, p.pool, &rows, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	out := make([]*domain.Resource, 0, len(rows))
	for _, r := range rows {
		res := r.toDomain()
		out = append(out, &res)
	}
	return out, nil
}

func (p *ResourceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	const op = "postgres.Resource.Get"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().Select(resourceColumns...).From(resourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var row resourceRow
	if err := pgxscan.Get(ctx, p.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	res := row.toDomain()
	return &res, nil
}

func (p *ResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	const op = "postgres.Resource.Update"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().Update(resourcesTable).
		Set("type", res.Type).
		Set("quantity", res.Quantity).
		Set("unit", res.Unit).
		Set("location_name", res.Location.Name).
		Set("geo_point", point(res.Location.Lat, res.Location.Lng)).
		Set("status", res.Status).
		Set("expiry_date", res.ExpiryDate).
		Where(sq.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	cmd, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", res.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ResourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Resource.Delete"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	cmd, err := p.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// ListCandidates prefilters on type, status and stock, and on distance when
// q.MaxRadiusKM > 0. Ranking is left to the matcher.
func (p *ResourceRepo) ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Resource, error) {
	const op = "postgres.Resource.ListCandidates"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	qb := psql().Select(resourceColumns...).From(resourcesTable).
		Where(sq.Eq{"type": q.Type, "status": domain.ResourceAvailable}).
		Where(sq.GtOrEq{"quantity": q.MinQuantity}).
		OrderBy("created_at ASC", "id ASC")

	if q.MaxRadiusKM > 0 {
		if !q.Near.Valid() {
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
		}
		qb = qb.Where(sq.Expr(
			"ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			q.Near.Lng, q.Near.Lat, q.MaxRadiusKM*1000,
		))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []resourceRow
	if err := pgxscan.Select(ctx, p.pool, &rows, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	out := make([]domain.Resource, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}
