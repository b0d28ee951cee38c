package repository

import (
	"context"
	"errors"
	"time"

	"mysonai/internal/model"

	"gorm.io/gorm"
)

type UsageRepo interface {
	GetUsageByUserID(ctx context.Context, userID uint64) (*model.UserUsage, error)
	AddUsage(ctx context.Context, userID uint64, messages int64, tokens int64) error
	ResetAllUsage(ctx context.Context, periodStart time.Time) (int64, error)
}

type UsageRepoImpl struct {
	db *gorm.DB
}

func NewUsageRepo(db *gorm.DB) UsageRepo {
	return &UsageRepoImpl{db: db}
}

func (s *UsageRepoImpl) GetUsageByUserID(ctx context.Context, userID uint64) (*model.UserUsage, error) {
	usage := &model.UserUsage{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(usage)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return usage, nil
}

// AddUsage increments the counters in place. Concurrent chat requests from
// the same user may interleave between the limit check and this write; the
// counters stay monotonic so the next request catches the overshoot.
func (s *UsageRepoImpl) AddUsage(ctx context.Context, userID uint64, messages int64, tokens int64) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserUsage{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_messages": gorm.Expr("total_messages + ?", messages),
			"total_tokens":   gorm.Expr("total_tokens + ?", tokens),
		})
	return result.Error
}

func (s *UsageRepoImpl) ResetAllUsage(ctx context.Context, periodStart time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.UserUsage{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"total_messages": 0,
			"total_tokens":   0,
			"period_start":   periodStart,
		})
	return result.RowsAffected, result.Error
}
