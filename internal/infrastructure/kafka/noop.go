package publisher

import (
	"log/slog"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

// NoopPublisher is used when no brokers are configured. It only logs at
// debug level.
type NoopPublisher struct{}

func (NoopPublisher) Publish(topic string, msgs ...domain.Message) error {
	slog.Debug("kafka disabled, dropping messages", "topic", topic, "count", len(msgs))
	return nil
}

func (NoopPublisher) PublishOrder(event domain.OrderEvent) error {
	slog.Debug("kafka disabled, dropping order event", "order_id", event.OrderID, "status", event.Status)
	return nil
}

func (NoopPublisher) Close() error { return nil }
