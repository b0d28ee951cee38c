package kafka

import (
	"context"
	log "log/slog"

	"mysonai/internal/api/config"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the usage event consumer group.
type ConsumerManager struct {
	usageConsumer sarama.ConsumerGroup
	usageHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("Kafka brokers not configured, usage consumer disabled")
		return &ConsumerManager{}, nil
	}

	saramaCfg := newSaramaConfig(cfg.Kafka)

	usageConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUsageConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		usageConsumer: usageConsumer,
		usageHandler:  NewUsageEventHandler(),
	}, nil
}

// Start blocks until ctx is cancelled.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	if m.usageConsumer == nil {
		<-ctx.Done()
		return nil
	}

	go func() {
		topic := cfg.KafkaUsageConsumer.Topic
		log.Info("Usage event consumer started", "topic", topic)
		for {
			if err := m.usageConsumer.Consume(ctx, []string{topic}, m.usageHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.usageConsumer.Close(); err != nil {
		log.Error("Failed to close usage consumer", "err", err)
	}

	return nil
}
