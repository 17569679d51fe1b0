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

const aidRequestsTable = "aid_requests"

var aidRequestColumns = []string{
	"id", "type", "quantity", "urgency", "location_name", latColumn, lngColumn, "description",
	"status", "requested_by", "allocated_resource", "assigned_volunteer", "created_at", "updated_at",
}

type aidRequestRow struct {
	ID                uuid.UUID            `db:"id"`
	Type              string               `db:"type"`
	Quantity          int                  `db:"quantity"`
	Urgency           domain.Urgency       `db:"urgency"`
	LocationName      string               `db:"location_name"`
	Lat               float64              `db:"lat"`
	Lng               float64              `db:"lng"`
	Description       string               `db:"description"`
	Status            domain.RequestStatus `db:"status"`
	RequestedBy       uuid.UUID            `db:"requested_by"`
	AllocatedResource *uuid.UUID           `db:"allocated_resource"`
	AssignedVolunteer *uuid.UUID           `db:"assigned_volunteer"`
	CreatedAt         time.Time            `db:"created_at"`
	UpdatedAt         time.Time            `db:"updated_at"`
}

func (r aidRequestRow) toDomain() *domain.AidRequest {
	return &domain.AidRequest{
		ID:                r.ID,
		Type:              r.Type,
		Quantity:          r.Quantity,
		Urgency:           r.Urgency,
		Location:          domain.Location{Name: r.LocationName, Lat: r.Lat, Lng: r.Lng},
		Description:       r.Description,
		Status:            r.Status,
		RequestedBy:       r.RequestedBy,
		AllocatedResource: r.AllocatedResource,
		AssignedVolunteer: r.AssignedVolunteer,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type AidRequestRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewAidRequestRepo(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *AidRequestRepo {
	return &AidRequestRepo{pool: pool, timeout: timeout, logger: logger}
}

func (p *AidRequestRepo) Create(ctx context.Context, req *domain.AidRequest) error {
	const op = "postgres.AidRequest.Create"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	if req.Status == "" {
		req.Status = domain.RequestPending
	}
	if req.Urgency == "" {
		req.Urgency = domain.UrgencyMedium
	}

	query, args, err := psql().Insert(aidRequestsTable).
		Columns("id", "type", "quantity", "urgency", "location_name", "geo_point", "description",
			"status", "requested_by", "allocated_resource", "assigned_volunteer", "created_at", "updated_at").
		Values(req.ID, req.Type, req.Quantity, req.Urgency, req.Location.Name, point(req.Location.Lat, req.Location.Lng),
			req.Description, req.Status, req.RequestedBy, req.AllocatedResource, req.AssignedVolunteer,
			req.CreatedAt, req.UpdatedAt).
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

// List returns newest first.
func (p *AidRequestRepo) List(ctx context.Context, filter domain.AidRequestFilter) ([]*domain.AidRequest, error) {
	const op = "postgres.AidRequest.List"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	qb := psql().Select(aidRequestColumns...).From(aidRequestsTable).OrderBy("created_at DESC")
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Urgency != "" {
		qb = qb.Where(sq.Eq{"urgency": filter.Urgency})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []aidRequestRow
	if err := pgxscan.Select(ctx, p.pool, &rows, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	out := make([]*domain.AidRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (p *AidRequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	req, err := getAidRequest(ctx, p.pool, id, false)
	if err != nil && !e.IsNotFound(err) {
		p.logger.Error("db query failed", slog.String("op", "postgres.AidRequest.Get"), slog.Any("error", err), slog.String("id", id.String()))
	}
	return req, err
}

func (p *AidRequestRepo) Update(ctx context.Context, req *domain.AidRequest) error {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	err := updateAidRequest(ctx, p.pool, req)
	if err != nil && !e.IsNotFound(err) {
		p.logger.Error("db exec failed", slog.String("op", "postgres.AidRequest.Update"), slog.Any("error", err), slog.String("id", req.ID.String()))
	}
	return err
}

func getAidRequest(ctx context.Context, db dbtx, id uuid.UUID, forUpdate bool) (*domain.AidRequest, error) {
	const op = "postgres.AidRequest.Get"

	qb := psql().Select(aidRequestColumns...).From(aidRequestsTable).Where(sq.Eq{"id": id})
	if forUpdate {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var row aidRequestRow
	if err := pgxscan.Get(ctx, db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return row.toDomain(), nil
}

func updateAidRequest(ctx context.Context, db dbtx, req *domain.AidRequest) error {
	const op = "postgres.AidRequest.Update"

	query, args, err := psql().Update(aidRequestsTable).
		Set("type", req.Type).
		Set("quantity", req.Quantity).
		Set("urgency", req.Urgency).
		Set("location_name", req.Location.Name).
		Set("geo_point", point(req.Location.Lat, req.Location.Lng)).
		Set("description", req.Description).
		Set("status", req.Status).
		Set("allocated_resource", req.AllocatedResource).
		Set("assigned_volunteer", req.AssignedVolunteer).
		Set("updated_at", req.UpdatedAt).
		Where(sq.Eq{"id": req.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	cmd, err := db.Exec(ctx, query, args...)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
