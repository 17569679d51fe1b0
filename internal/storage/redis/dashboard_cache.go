package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"reliefhub/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	statsKey        = "dashboard:stats"
	distributionKey = "dashboard:distribution"
)

type DashboardCache struct {
	client *redis.Client
}

func NewDashboardCache(r *Redis) *DashboardCache {
	return &DashboardCache{client: r.Client}
}

func (c *DashboardCache) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	ok, err := c.get(ctx, statsKey, &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

func (c *DashboardCache) SetStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error {
	return c.set(ctx, statsKey, stats, ttl)
}

func (c *DashboardCache) GetDistribution(ctx context.Context) ([]domain.ResourceDistribution, error) {
	var dist []domain.ResourceDistribution
	ok, err := c.get(ctx, distributionKey, &dist)
	if err != nil || !ok {
		return nil, err
	}
	if dist == nil {
		dist = []domain.ResourceDistribution{}
	}
	return dist, nil
}

func (c *DashboardCache) SetDistribution(ctx context.Context, dist []domain.ResourceDistribution, ttl time.Duration) error {
	return c.set(ctx, distributionKey, dist, ttl)
}

func (c *DashboardCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *DashboardCache) set(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}
