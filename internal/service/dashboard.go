package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reliefhub/internal/domain"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	stats  StatsRepository
	cache  DashboardCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewDashboardService caches results for ttl when cache is set and ttl > 0.
func NewDashboardService(stats StatsRepository, cache DashboardCache, ttl time.Duration, logger *slog.Logger) *DashboardService {
	return &DashboardService{stats: stats, cache: cache, ttl: ttl, logger: logger}
}

func (s *DashboardService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cacheEnabled() {
		cached, err := s.cache.GetStats(ctx)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	out, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}
	s.storeStats(ctx, out)
	return out, nil
}

func (s *DashboardService) computeStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.TotalRequests, err = s.stats.CountRequests(gctx, domain.AidRequestFilter{})
		return err
	})
	g.Go(func() (err error) {
		out.PendingRequests, err = s.stats.CountRequests(gctx, domain.AidRequestFilter{Status: domain.RequestPending})
		return err
	})
	g.Go(func() (err error) {
		out.CriticalPendingRequests, err = s.stats.CountRequests(gctx, domain.AidRequestFilter{
			Status:  domain.RequestPending,
			Urgency: domain.UrgencyCritical,
		})
		return err
	})
	g.Go(func() (err error) {
		out.TotalResources, err = s.stats.CountResources(gctx, domain.ResourceFilter{})
		return err
	})
	g.Go(func() (err error) {
		out.AvailableResources, err = s.stats.CountResources(gctx, domain.ResourceFilter{Status: domain.ResourceAvailable})
		return err
	})
	g.Go(func() (err error) {
		out.TotalVolunteers, err = s.stats.CountVolunteers(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		out.ActiveVolunteers, err = s.stats.CountVolunteers(gctx, true)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.AllocatedResources = out.TotalResources - out.AvailableResources

	return &out, nil
}

func (s *DashboardService) storeStats(ctx context.Context, stats *domain.DashboardStats) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.SetStats(ctx, stats, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", slog.Any("error", err))
	}
}

func (s *DashboardService) ResourceDistribution(ctx context.Context) ([]domain.ResourceDistribution, error) {
	if s.cacheEnabled() {
		cached, err := s.cache.GetDistribution(ctx)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	dist, err := s.computeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	s.storeDistribution(ctx, dist)
	return dist, nil
}

func (s *DashboardService) computeDistribution(ctx context.Context) ([]domain.ResourceDistribution, error) {
	dist, err := s.stats.ResourceDistribution(ctx)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		dist = []domain.ResourceDistribution{}
	}
	return dist, nil
}

func (s *DashboardService) storeDistribution(ctx context.Context, dist []domain.ResourceDistribution) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.SetDistribution(ctx, dist, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", slog.Any("error", err))
	}
}

// Refresh recomputes both dashboard views and overwrites the cache without
// reading it. It is a no-op when caching is disabled.
func (s *DashboardService) Refresh(ctx context.Context) error {
	const op = "service.Dashboard.Refresh"

	if !s.cacheEnabled() {
		return nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	dist, err := s.computeDistribution(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.storeStats(ctx, stats)
	s.storeDistribution(ctx, dist)
	return nil
}
