package model

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID          uint64 `gorm:"primaryKey"`
	Slug        string `gorm:"type:varchar(120);uniqueIndex:idx_blog_slug"`
	Title       string `gorm:"type:varchar(200)"`
	Summary     string `gorm:"type:varchar(500)"`
	Content     string `gorm:"type:longtext"`
	Tags        string `gorm:"type:varchar(500)"` // comma-separated
	CoverURL    string `gorm:"type:varchar(500)"`
	Status      int    `gorm:"type:tinyint;default:0;index:idx_blog_status"`
	AIGenerated bool   `gorm:"type:tinyint(1);default:0"`
	AuthorID    uint64
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
