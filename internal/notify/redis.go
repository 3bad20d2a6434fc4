package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/growthplan/internal/model"
)

type redisDispatcher struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

// NewRedisDispatcher appends notifications to a Redis stream for downstream delivery.
func NewRedisDispatcher(client *redis.Client, stream string, logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisDispatcher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (d *redisDispatcher) Send(ctx context.Context, n model.Notification, destination string) bool {
	fields := map[string]any{
		"notification_id": n.ID,
		"category":        string(n.Category),
		"message_text":    n.MessageText,
		"priority":        string(n.Priority),
		"timestamp":       n.Timestamp.Format(time.RFC3339Nano),
		"destination":     destination,
	}

	msgID, err := d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: d.stream,
		Values: fields,
	}).Result()
	if err != nil {
		d.logger.WarnContext(ctx, "notification enqueue failed", "notification_id", n.ID, "stream", d.stream, "error", err)
		return false
	}

	d.logger.InfoContext(ctx, "notification enqueued", "notification_id", n.ID, "stream", d.stream, "message_id", msgID)
	return true
}
