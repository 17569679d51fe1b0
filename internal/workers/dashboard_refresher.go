package workers

import (
	"context"
	"log/slog"
	"time"
)

type DashboardRefresher interface {
	Refresh(ctx context.Context) error
}

// DashboardWarmer keeps the dashboard cache populated so reads rarely hit
// Postgres. Each tick gets its own deadline of one interval.
type DashboardWarmer struct {
	dashboard DashboardRefresher
	every     time.Duration
	logger    *slog.Logger
}

func NewDashboardWarmer(dashboard DashboardRefresher, every time.Duration, logger *slog.Logger) *DashboardWarmer {
	return &DashboardWarmer{dashboard: dashboard, every: every, logger: logger}
}

// Run blocks until ctx is done. The first refresh happens immediately.
func (w *DashboardWarmer) Run(ctx context.Context) {
	if w.every <= 0 {
		return
	}

	w.logger.Info("dashboard warmer started", slog.Duration("every", w.every))

	ticker := time.NewTicker(w.every)
	defer ticker.Stop()

	for {
		w.refresh(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info("dashboard warmer stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *DashboardWarmer) refresh(ctx context.Context) {
	tctx, cancel := context.WithTimeout(ctx, w.every)
	defer cancel()

	start := time.Now()
	if err := w.dashboard.Refresh(tctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn("dashboard refresh failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("dashboard refreshed", slog.Duration("latency", time.Since(start)))
}
