package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const usersTable = "users"

var userColumns = []string{
	"id", "name", "email", "password_hash", "role", "phone", "address", "lat", "lng",
	"skills", "is_available", "created_at",
}

type userRow struct {
	ID           uuid.UUID   `db:"id"`
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	Role         domain.Role `db:"role"`
	Phone        string      `db:"phone"`
	Address      string      `db:"address"`
	Lat          float64     `db:"lat"`
	Lng          float64     `db:"lng"`
	Skills       []string    `db:"skills"`
	IsAvailable  bool        `db:"is_available"`
	CreatedAt    time.Time   `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		Phone:        r.Phone,
		Location:     domain.UserLocation{Address: r.Address, Lat: r.Lat, Lng: r.Lng},
		Skills:       skills,
		IsAvailable:  r.IsAvailable,
		CreatedAt:    r.CreatedAt,
	}
}

type UserRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, timeout: timeout, logger: logger}
}

func (p *UserRepo) Create(ctx context.Context, user *domain.User) error {
	const op = "postgres.User.Create"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}

	query, args, err := psql().Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Role, user.Phone,
			user.Location.Address, user.Location.Lat, user.Location.Lng, user.Skills, user.IsAvailable, user.CreatedAt).
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

func (p *UserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	return getUser(ctx, p.pool, sq.Eq{"id": id})
}

func (p *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	return getUser(ctx, p.pool, sq.Eq{"email": strings.ToLower(email)})
}

// ListVolunteers returns newest first.
func (p *UserRepo) ListVolunteers(ctx context.Context) ([]*domain.User, error) {
	const op = "postgres.User.ListVolunteers"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().Select(userColumns...).From(usersTable).
		Where(sq.Eq{"role": domain.RoleVolunteer}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, p.pool, &rows, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	out := make([]*domain.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (p *UserRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*domain.User, error) {
	const op = "postgres.User.SetAvailability"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().Update(usersTable).
		Set("is_available", available).
		Where(sq.Eq{"id": id, "role": domain.RoleVolunteer}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, p.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return row.toDomain(), nil
}

func getUser(ctx context.Context, db dbtx, where sq.Eq) (*domain.User, error) {
	const op = "postgres.User.Get"

	query, args, err := psql().Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return row.toDomain(), nil
}
