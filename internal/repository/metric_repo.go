package repository

import (
	"context"
	"time"

	"mysonai/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepo interface {
	UpsertDay(ctx context.Context, metric *model.DailyUsageMetric) error
	GetRange(ctx context.Context, from time.Time, to time.Time) ([]*model.DailyUsageMetric, error)
}

type MetricRepoImpl struct {
	db *gorm.DB
}

func NewMetricRepo(db *gorm.DB) MetricRepo {
	return &MetricRepoImpl{db: db}
}

func (s *MetricRepoImpl) UpsertDay(ctx context.Context, metric *model.DailyUsageMetric) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "metric_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"messages":     gorm.Expr("messages + ?", metric.Messages),
				"tokens":       gorm.Expr("tokens + ?", metric.Tokens),
				"active_users": gorm.Expr("GREATEST(active_users, ?)", metric.ActiveUsers),
			}),
		}).
		Create(metric)
	return result.Error
}

func (s *MetricRepoImpl) GetRange(ctx context.Context, from time.Time, to time.Time) ([]*model.DailyUsageMetric, error) {
	var metrics []*model.DailyUsageMetric
	result := s.db.WithContext(ctx).
		Where("metric_date >= ? AND metric_date <= ?", from, to).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
