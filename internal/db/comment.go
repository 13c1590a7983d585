package db

import "time"

// Comment 定义了评论模型。PostID 只是引用，不建立外键。
type Comment struct {
	ID          uint          `gorm:"primaryKey"`
	PostID      uint          `gorm:"index;not null"`
	ParentID    *uint         `gorm:"index"`
	AuthorName  string        `gorm:"size:50"`
	AuthorEmail string        `gorm:"size:100"`
	Content     string        `gorm:"type:text;not null"`
	Status      CommentStatus `gorm:"size:20;index;not null;default:PENDING"`
	IPAddress   string        `gorm:"size:45"`
	UserAgent   string        `gorm:"type:text"`
	CreatedAt   time.Time     `gorm:"index"`
}
