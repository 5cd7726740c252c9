package publisher

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

// ContentEvent names public views whose cached rendering is stale.
type ContentEvent struct {
	Paths []string  `json:"paths"`
	At    time.Time `json:"at"`
}

type KafkaContentInvalidator struct {
	publisher domain.PublisherPort
	topic     string
}

func NewKafkaContentInvalidator(publisher domain.PublisherPort, topic string) *KafkaContentInvalidator {
	return &KafkaContentInvalidator{publisher: publisher, topic: topic}
}

// Invalidate publishes in the background; failures are only logged.
func (i *KafkaContentInvalidator) Invalidate(paths ...string) {
	if len(paths) == 0 {
		return
	}
	event := ContentEvent{Paths: paths, At: time.Now().UTC()}
	go func(event ContentEvent) {
		v, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal content event", "error", err)
			return
		}
		if err := i.publisher.Publish(i.topic, domain.Message{Key: []byte(event.Paths[0]), Value: v}); err != nil {
			slog.Error("failed to publish content event", "paths", event.Paths, "error", err)
		}
	}(event)
}
