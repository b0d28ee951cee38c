package kafka

import (
	"context"
	log "log/slog"

	"mysonai/internal/api/config"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// UsageProducer publishes usage events for async aggregation.
type UsageProducer interface {
	Publish(ctx context.Context, event *UsageEvent) error
	Close() error
}

type usageProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewUsageProducer connects a sync producer to the usage topic. When no
// brokers are configured the metrics pipeline degrades to a no-op so the
// chat path never depends on Kafka being up.
func NewUsageProducer(cfg *config.Config) (UsageProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("Kafka brokers not configured, usage events disabled")
		return &noopProducer{}, nil
	}

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}

	return &usageProducerImpl{
		producer: producer,
		topic:    cfg.KafkaUsageConsumer.Topic,
	}, nil
}

func (s *usageProducerImpl) Publish(ctx context.Context, event *UsageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to publish usage event", "err", err)
	}
	return err
}

func (s *usageProducerImpl) Close() error {
	return s.producer.Close()
}

type noopProducer struct{}

func (s *noopProducer) Publish(context.Context, *UsageEvent) error { return nil }
func (s *noopProducer) Close() error                               { return nil }
