package db

import "time"

// Admin 定义了后台管理员模型，PasswordHash 保存 bcrypt 哈希
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
