package model

import "time"

// UserUsage is the cumulative per-user meter. Counters only ever grow; the
// monthly reset job archives and zeroes them, nothing else decrements.
type UserUsage struct {
	ID            uint64 `gorm:"primaryKey"`
	UserID        uint64 `gorm:"uniqueIndex:idx_usage_user"`
	TotalMessages int64  `gorm:"default:0"`
	TotalTokens   int64  `gorm:"default:0"`
	PeriodStart   time.Time
	UpdatedAt     time.Time
}

func (UserUsage) TableName() string {
	return "user_usage"
}
