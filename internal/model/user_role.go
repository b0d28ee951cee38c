package model

type UserRole struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"index:idx_user_role_user"`
	Role   string `gorm:"type:varchar(30)"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
