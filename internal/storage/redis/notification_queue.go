package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"reliefhub/internal/domain"
	"reliefhub/pkg/e"

	"github.com/redis/go-redis/v9"
)

const DefaultNotificationQueueKey = "notifications:outbox"

// NotificationQueue is a FIFO list: LPUSH in, BRPOP out.
type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	if key == "" {
		key = DefaultNotificationQueueKey
	}
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, ev domain.NotificationEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) Pop(ctx context.Context, timeout time.Duration) (domain.NotificationEvent, error) {
	var ev domain.NotificationEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

func (q *NotificationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
