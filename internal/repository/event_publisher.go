package repository

import (
	"context"

	"YenDong/internal/domain/models"
	"YenDong/internal/domain/repository"
	pkgkafka "YenDong/pkg/kafka"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher implements EventPublisher for Kafka.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates Kafka publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.EventPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev models.Event) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.Key), ev,
		kafka.Header{Key: "event-type", Value: []byte(ev.Type)},
	)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
