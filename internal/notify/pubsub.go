package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"cloud.google.com/go/pubsub"

	"basegraph.app/growthplan/internal/model"
)

type pubsubDispatcher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewPubSubDispatcher publishes the JSON notification with category, priority and
// destination as message attributes.
func NewPubSubDispatcher(client *pubsub.Client, topicID string, logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &pubsubDispatcher{
		topic:  client.Topic(topicID),
		logger: logger,
	}
}

func (d *pubsubDispatcher) Send(ctx context.Context, n model.Notification, destination string) bool {
	data, err := json.Marshal(n)
	if err != nil {
		d.logger.WarnContext(ctx, "notification encode failed", "notification_id", n.ID, "error", err)
		return false
	}

	result := d.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"category":    string(n.Category),
			"priority":    string(n.Priority),
			"destination": destination,
		},
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "notification publish failed", "notification_id", n.ID, "topic", d.topic.ID(), "error", err)
		return false
	}

	d.logger.InfoContext(ctx, "notification published", "notification_id", n.ID, "topic", d.topic.ID(), "server_id", serverID)
	return true
}

// Stop flushes pending publishes.
func (d *pubsubDispatcher) Stop() {
	d.topic.Stop()
}
