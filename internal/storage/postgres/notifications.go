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

const notificationsTable = "notifications"

var notificationColumns = []string{"id", "message", "type", "recipient", "is_read", "created_at"}

type notificationRow struct {
	ID        uuid.UUID               `db:"id"`
	Message   string                  `db:"message"`
	Type      domain.NotificationType `db:"type"`
	Recipient *uuid.UUID              `db:"recipient"`
	IsRead    bool                    `db:"is_read"`
	CreatedAt time.Time               `db:"created_at"`
}

func (r notificationRow) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:        r.ID,
		Message:   r.Message,
		Type:      r.Type,
		Recipient: domain.RecipientFromPtr(r.Recipient),
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}

// visibleTo matches rows addressed to userID or broadcast.
func visibleTo(userID uuid.UUID) sq.Or {
	return sq.Or{sq.Eq{"recipient": nil}, sq.Eq{"recipient": userID}}
}

type NotificationRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, timeout: timeout, logger: logger}
}

func (p *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	err := insertNotification(ctx, p.pool, n)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", "postgres.Notification.Create"), slog.Any("error", err))
	}
	return err
}

// ListFor returns up to limit notifications visible to userID, newest first.
func (p *NotificationRepo) ListFor(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Notification, error) {
	const op = "postgres.Notification.ListFor"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query, args, err := psql().Select(notificationColumns...).From(notificationsTable).
		Where(visibleTo(userID)).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []notificationRow
	if err := pgxscan.Select(ctx, p.pool, &rows, query, args...); err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	out := make([]*domain.Notification, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// MarkRead only touches notifications visible to userID. Broadcast rows share one flag.
func (p *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	const op = "postgres.Notification.MarkRead"

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	query, args, err := psql().Update(notificationsTable).
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		Where(visibleTo(userID)).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var row notificationRow
	if err := pgxscan.Get(ctx, p.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return row.toDomain(), nil
}

func insertNotification(ctx context.Context, db dbtx, n *domain.Notification) error {
	const op = "postgres.Notification.Create"

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Type == "" {
		n.Type = domain.NotificationInfo
	}

	query, args, err := psql().Insert(notificationsTable).
		Columns(notificationColumns...).
		Values(n.ID, n.Message, n.Type, n.Recipient.Ptr(), n.IsRead, n.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
