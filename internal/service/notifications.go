package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	"github.com/google/uuid"
)

const notificationListLimit = 50

type NotificationService struct {
	repo   NotificationRepository
	queue  NotificationQueue
	logger *slog.Logger
}

// NewNotificationService builds the notification store and fan-out. queue may be nil.
func NewNotificationService(repo NotificationRepository, queue NotificationQueue, logger *slog.Logger) *NotificationService {
	return &NotificationService{repo: repo, queue: queue, logger: logger}
}

// Notify stores n and hands it to the delivery queue. Delivery is best effort.
func (s *NotificationService) Notify(ctx context.Context, n *domain.Notification) error {
	const op = "service.Notification.Notify"

	if n.Message == "" {
		return fmt.Errorf("%s: %w", op, e.Invalid(fmt.Errorf("message is required")))
	}
	if n.Type == "" {
		n.Type = domain.NotificationInfo
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	publish(ctx, s.queue, s.logger, n)
	return nil
}

func (s *NotificationService) ListFor(ctx context.Context, p domain.Principal) ([]*domain.Notification, error) {
	return s.repo.ListFor(ctx, p.UserID, notificationListLimit)
}

// MarkRead flags a notification the caller can see as read.
func (s *NotificationService) MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, id, p.UserID)
}

func publish(ctx context.Context, q NotificationQueue, logger *slog.Logger, n *domain.Notification) {
	if q == nil {
		return
	}
	if err := q.Enqueue(ctx, n.Event()); err != nil {
		logger.Error("enqueue notification failed",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	logger.Debug("notification enqueued", slog.String("notification_id", n.ID.String()))
}

// notifyBestEffort is used after a primary write already succeeded.
func notifyBestEffort(ctx context.Context, notifier Notifier, logger *slog.Logger, n *domain.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, n); err != nil {
		logger.Error("notification failed",
			slog.String("message", n.Message),
			slog.Any("error", err),
		)
	}
}
