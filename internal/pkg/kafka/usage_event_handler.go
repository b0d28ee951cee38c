package kafka

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/redis"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const dailyKeyTTL = 72 * time.Hour

// UsageEventHandler aggregates chat usage events into per-day Redis
// counters. The rollup job later flushes dirty days into MySQL.
type UsageEventHandler struct{}

func NewUsageEventHandler() *UsageEventHandler {
	return &UsageEventHandler{}
}

func (s *UsageEventHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("usage event consumer setup")
	return nil
}

func (s *UsageEventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("usage event consumer cleanup")
	return nil
}

func (s *UsageEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("usage event process batch error", "err", err)
		return err
	}
	return nil
}

func (s *UsageEventHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event UsageEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal usage event error", "err", err)
		// poison message, skip instead of retrying forever
		return nil
	}

	day := event.Timestamp.Format("2006-01-02")
	rdb := redis.GetRdbClient()

	pipe := rdb.Pipeline()
	dailyKey := consts.UsageDailyKey + day
	pipe.HIncrBy(ctx, dailyKey, "messages", event.Messages)
	pipe.HIncrBy(ctx, dailyKey, "tokens", event.Tokens)
	pipe.Expire(ctx, dailyKey, dailyKeyTTL)

	if event.UserID != 0 {
		activeKey := consts.UsageActiveKey + day
		pipe.SAdd(ctx, activeKey, strconv.FormatUint(event.UserID, 10))
		pipe.Expire(ctx, activeKey, dailyKeyTTL)
	}

	pipe.SAdd(ctx, consts.UsageDirtyKey, day)

	_, err := pipe.Exec(ctx)
	return err
}
