package notify

import (
	"context"

	"github.com/redis/go-redis/v9"

	"impilo/registry/internal/models"
)

// Enqueuer writes dispatch tasks onto the redis stream the worker consumes.
// The stream write happens after the status row is committed; callers treat
// a failed XADD as a logged-and-dropped notification, not an error.
type Enqueuer struct {
	queue  *redis.Client
	stream string
}

func NewEnqueuer(queue *redis.Client, stream string) *Enqueuer {
	return &Enqueuer{
		queue:  queue,
		stream: stream,
	}
}

func (e *Enqueuer) EnqueueTransition(ctx context.Context, reg models.Registration) error {
	if e.queue == nil {
		return nil
	}

	_, err := e.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: e.stream,
		Values: map[string]any{
			"type":     "transition",
			"id":       reg.ID,
			"status":   string(reg.Status),
			"fullName": reg.FullName,
			"email":    reg.Email,
			"phone":    reg.Phone,
		},
	}).Result()
	return err
}

// EnqueueDigest hands the daily pending-review summary to the worker.
func (e *Enqueuer) EnqueueDigest(ctx context.Context, to string, pending int) error {
	if e.queue == nil {
		return nil
	}

	_, err := e.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: e.stream,
		Values: map[string]any{
			"type":    "digest",
			"to":      to,
			"pending": pending,
		},
	}).Result()
	return err
}
