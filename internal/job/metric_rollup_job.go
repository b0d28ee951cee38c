package job

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"mysonai/internal/model"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/logger"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/repository"

	"github.com/google/uuid"
)

// MetricRollupJob flushes the dirty per-day Redis counters into the
// daily_usage_metrics table.
type MetricRollupJob struct {
	metricRepo repository.MetricRepo
}

func NewMetricRollupJob(metricRepo repository.MetricRepo) *MetricRollupJob {
	return &MetricRollupJob{metricRepo: metricRepo}
}

func (s *MetricRollupJob) Run() {
	traceID := "job-metrics-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.UsageRollupLock, lockValue, time.Minute*5, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.UsageRollupLock, lockValue)

	processingKey := consts.UsageDirtyKey + ":processing"
	if err = redis.Rename(ctx, consts.UsageDirtyKey, processingKey); err != nil {
		// empty dirty set, nothing to roll up
		return
	}

	days, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get usage dirty set error", "err", err)
		return
	}

	rdb := redis.GetRdbClient()
	flushed := 0

	for _, day := range days {
		metricDate, err := time.Parse("2006-01-02", day)
		if err != nil {
			log.WarnContext(ctx, "skipping malformed metric day", "day", day)
			continue
		}

		dailyKey := consts.UsageDailyKey + day
		fields, err := rdb.HGetAll(ctx, dailyKey).Result()
		if err != nil {
			log.ErrorContext(ctx, "read daily counters error", "day", day, "err", err)
			continue
		}

		messages, _ := strconv.ParseInt(fields["messages"], 10, 64)
		tokens, _ := strconv.ParseInt(fields["tokens"], 10, 64)
		activeUsers, err := rdb.SCard(ctx, consts.UsageActiveKey+day).Result()
		if err != nil {
			activeUsers = 0
		}

		metric := &model.DailyUsageMetric{
			MetricDate:  metricDate,
			Messages:    messages,
			Tokens:      tokens,
			ActiveUsers: activeUsers,
		}
		if err = s.metricRepo.UpsertDay(ctx, metric); err != nil {
			log.ErrorContext(ctx, "upsert daily metric error", "day", day, "err", err)
			// keep the counters, the next run retries this day
			_ = redis.SAdd(ctx, consts.UsageDirtyKey, day)
			continue
		}

		// counters are folded into MySQL, drop them so the next flush
		// does not double count
		_ = redis.DeleteKey(ctx, dailyKey)
		flushed++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete usage processing set error", "err", err)
	}

	log.InfoContext(ctx, "usage metric rollup finished", "days", flushed)
}
