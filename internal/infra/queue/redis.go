package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-pulse/internal/domain"
)

// RedisRefreshQueue carries refresh jobs over a Redis list. It is the
// fallback when no AMQP broker is configured.
type RedisRefreshQueue struct {
	client *redis.Client
	key    string
}

var _ domain.RefreshQueue = (*RedisRefreshQueue)(nil)

// NewRedisRefreshQueue creates the queue on the given list key.
func NewRedisRefreshQueue(client *redis.Client, key string) *RedisRefreshQueue {
	return &RedisRefreshQueue{client: client, key: key}
}

// Enqueue publishes a job to the queue.
func (q *RedisRefreshQueue) Enqueue(ctx context.Context, job domain.RefreshJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("push job: %w", err)
	}
	return nil
}

// Pop blocks until a job arrives or the context is cancelled.
func (q *RedisRefreshQueue) Pop(ctx context.Context) (domain.RefreshJob, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.RefreshJob{}, err
		}

		res, err := q.client.BRPop(ctx, time.Second, q.key).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				if ctx.Err() != nil {
					return domain.RefreshJob{}, ctx.Err()
				}
				continue
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			return domain.RefreshJob{}, err
		}
		if len(res) != 2 {
			return domain.RefreshJob{}, errors.New("redis queue: unexpected response")
		}
		var job domain.RefreshJob
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			return domain.RefreshJob{}, fmt.Errorf("decode job: %w", err)
		}
		return job, nil
	}
}
