package job

import (
	"context"
	log "log/slog"
	"time"

	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/logger"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/repository"

	"github.com/google/uuid"
)

// UsageResetJob zeroes every user meter at the start of a billing month.
type UsageResetJob struct {
	usageRepo repository.UsageRepo
}

func NewUsageResetJob(usageRepo repository.UsageRepo) *UsageResetJob {
	return &UsageResetJob{usageRepo: usageRepo}
}

func (s *UsageResetJob) Run() {
	traceID := "job-usage-reset-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	now := time.Now().UTC()
	if now.Day() != 1 {
		return
	}

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.UsageResetLock, lockValue, time.Minute*10, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.UsageResetLock, lockValue)

	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.usageRepo.ResetAllUsage(ctx, periodStart)
	if err != nil {
		log.ErrorContext(ctx, "monthly usage reset failed", "err", err)
		return
	}

	log.InfoContext(ctx, "monthly usage reset finished", "users", rows, "period", periodStart.Format("2006-01-02"))
}
