package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AllocationStore runs allocations in a single read-committed transaction.
// The request row is locked with FOR UPDATE and the resource is claimed
// with a compare-and-set on its status.
type AllocationStore struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewAllocationStore(pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) *AllocationStore {
	return &AllocationStore{pool: pool, timeout: timeout, logger: logger}
}

func (s *AllocationStore) WithinTx(ctx context.Context, fn func(tx domain.AllocationTx) error) error {
	const op = "postgres.Allocation.WithinTx"

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		s.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(&allocationTx{tx: tx, timeout: s.timeout}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

type allocationTx struct {
	tx      pgx.Tx
	timeout time.Duration
}

func (a *allocationTx) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*domain.AidRequest, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	return getAidRequest(ctx, a.tx, id, true)
}

func (a *allocationTx) ClaimResource(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Allocation.ClaimResource"

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	query, args, err := psql().Update(resourcesTable).
		Set("status", domain.ResourceAllocated).
		Where(sq.Eq{"id": id, "status": domain.ResourceAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}

	cmd, err := a.tx.Exec(ctx, query, args...)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := a.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM resources WHERE id = $1)`, id).Scan(&exists); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !exists {
		return fmt.Errorf("%s: resource %s: %w", op, id, e.ErrNotFound)
	}
	return fmt.Errorf("%s: resource %s is not available: %w", op, id, e.ErrConflict)
}

func (a *allocationTx) GetVolunteer(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	return getUser(ctx, a.tx, sq.Eq{"id": id})
}

func (a *allocationTx) SaveAllocation(ctx context.Context, req *domain.AidRequest) error {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	return updateAidRequest(ctx, a.tx, req)
}

func (a *allocationTx) CreateNotification(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	return insertNotification(ctx, a.tx, n)
}
