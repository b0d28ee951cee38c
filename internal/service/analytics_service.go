package service

import (
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"mysonai/internal/api/config"
	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/repository"
)

type AnalyticsService interface {
	GetDailyMetrics(ctx context.Context, days int) ([]*dto.DailyUsageDTO, error)
	GetPlanLimits(ctx context.Context) []*dto.PlanLimitDTO
}

type AnalyticsServiceImpl struct {
	metricRepo repository.MetricRepo
	cfg        *config.Config
}

func NewAnalyticsService(metricRepo repository.MetricRepo, cfg *config.Config) AnalyticsService {
	return &AnalyticsServiceImpl{
		metricRepo: metricRepo,
		cfg:        cfg,
	}
}

// GetDailyMetrics combines rolled-up rows from MySQL with the live Redis
// counters for today, which the rollup job has not flushed yet.
func (s *AnalyticsServiceImpl) GetDailyMetrics(ctx context.Context, days int) ([]*dto.DailyUsageDTO, error) {
	if days <= 0 || days > 90 {
		days = 30
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -(days - 1))

	rows, err := s.metricRepo.GetRange(ctx, from, today)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*dto.DailyUsageDTO, len(rows))
	for _, row := range rows {
		day := row.MetricDate.Format("2006-01-02")
		byDate[day] = &dto.DailyUsageDTO{
			Date:        day,
			Messages:    row.Messages,
			Tokens:      row.Tokens,
			ActiveUsers: row.ActiveUsers,
		}
	}

	s.overlayLiveCounters(ctx, byDate, today.Format("2006-01-02"))

	metrics := make([]*dto.DailyUsageDTO, 0, len(byDate))
	for _, m := range byDate {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Date < metrics[j].Date
	})
	return metrics, nil
}

func (s *AnalyticsServiceImpl) GetPlanLimits(ctx context.Context) []*dto.PlanLimitDTO {
	plans := s.cfg.Plans
	if len(plans) == 0 {
		plans = config.DefaultPlans()
	}

	limits := make([]*dto.PlanLimitDTO, 0, len(plans))
	for name, plan := range plans {
		limits = append(limits, &dto.PlanLimitDTO{
			Plan:     name,
			Messages: plan.Messages,
			Tokens:   plan.Tokens,
		})
	}
	sort.Slice(limits, func(i, j int) bool {
		return limits[i].Plan < limits[j].Plan
	})
	return limits
}

func (s *AnalyticsServiceImpl) overlayLiveCounters(ctx context.Context, byDate map[string]*dto.DailyUsageDTO, today string) {
	rdb := redis.GetRdbClient()

	fields, err := rdb.HGetAll(ctx, consts.UsageDailyKey+today).Result()
	if err != nil {
		log.WarnContext(ctx, "failed to read live usage counters", "err", err)
		return
	}
	if len(fields) == 0 {
		return
	}

	messages, _ := strconv.ParseInt(fields["messages"], 10, 64)
	tokens, _ := strconv.ParseInt(fields["tokens"], 10, 64)
	activeUsers, err := rdb.SCard(ctx, consts.UsageActiveKey+today).Result()
	if err != nil {
		activeUsers = 0
	}

	entry, ok := byDate[today]
	if !ok {
		entry = &dto.DailyUsageDTO{Date: today}
		byDate[today] = entry
	}
	entry.Messages += messages
	entry.Tokens += tokens
	if activeUsers > entry.ActiveUsers {
		entry.ActiveUsers = activeUsers
	}
}
