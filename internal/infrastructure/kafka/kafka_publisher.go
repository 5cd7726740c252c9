package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 10 * time.Second

type DefaultKafkaPublisher struct {
	writer     *kafka.Writer
	orderTopic string
}

func NewDefaultKafkaPublisher(brokers []string, orderTopic string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		orderTopic: orderTopic,
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return k.writer.WriteMessages(ctx, km...)
}

// PublishOrder keys events by order id so that every change of one order
// lands on the same partition.
func (k *DefaultKafkaPublisher) PublishOrder(event domain.OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(k.orderTopic, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
