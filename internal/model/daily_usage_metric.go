package model

import "time"

// DailyUsageMetric is one day of platform-wide chat usage, rolled up from
// redis counters by the metric job and the kafka usage consumer.
type DailyUsageMetric struct {
	ID          uint64    `gorm:"primaryKey"`
	MetricDate  time.Time `gorm:"type:date;uniqueIndex:idx_metric_date"`
	Messages    int64     `gorm:"default:0"`
	Tokens      int64     `gorm:"default:0"`
	ActiveUsers int64     `gorm:"default:0"`
	UpdatedAt   time.Time
}

func (DailyUsageMetric) TableName() string {
	return "daily_usage_metrics"
}
