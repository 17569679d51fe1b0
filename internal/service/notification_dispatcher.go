package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"reliefhub/internal/config"
	"reliefhub/internal/domain"
	"reliefhub/pkg/e"
)

const (
	dispatchPopTimeout = 5 * time.Second
	dispatchMaxRetries = 3
)

// NotificationSource blocks up to timeout for the next event.
// It returns e.ErrQueueEmpty when nothing arrived.
type NotificationSource interface {
	Pop(ctx context.Context, timeout time.Duration) (domain.NotificationEvent, error)
}

// NotificationDispatcher forwards queued notification events to a webhook.
type NotificationDispatcher struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	source NotificationSource
	http   *http.Client

	backoff func(attempt int) time.Duration
}

func NewNotificationDispatcher(logger *slog.Logger, cfg config.WebhookConfig, source NotificationSource) *NotificationDispatcher {
	return &NotificationDispatcher{
		logger: logger,
		cfg:    cfg,
		source: source,
		http:   &http.Client{Timeout: 5 * time.Second},
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// Run loops until ctx is done.
func (d *NotificationDispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher started", slog.String("url", d.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := d.source.Pop(ctx, dispatchPopTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			d.logger.Error("queue pop failed", slog.Any("error", err))
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		d.logger.Debug("dispatching notification", slog.String("notification_id", ev.NotificationID.String()))
		d.sendWithRetry(ctx, ev)
	}
}

// sendWithRetry reports whether the webhook accepted the event.
func (d *NotificationDispatcher) sendWithRetry(ctx context.Context, ev domain.NotificationEvent) bool {
	body, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("marshal notification event failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= dispatchMaxRetries; attempt++ {
		if ctx.Err() != nil {
			d.logger.Info("stop retries due to context cancel")
			return false
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
		if err != nil {
			d.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		d.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", d.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < dispatchMaxRetries && !sleepCtx(ctx, d.backoff(attempt)) {
			return false
		}
	}

	d.logger.Error("notification dropped after retries", slog.String("notification_id", ev.NotificationID.String()))
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
