package model

import "time"

type ContactMessage struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(120)"`
	Subject   string `gorm:"type:varchar(200)"`
	Message   string `gorm:"type:text"`
	IsRead    bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
