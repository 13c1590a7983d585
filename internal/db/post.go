package db

import "time"

// Post 定义了文章模型
type Post struct {
	ID         uint       `gorm:"primaryKey"`
	Title      string     `gorm:"size:200;not null"`
	Slug       string     `gorm:"size:200;uniqueIndex;not null"`
	Content    string     `gorm:"type:text;not null"`
	Summary    string     `gorm:"size:500"`
	CoverImage string     `gorm:"size:500"`
	Status     PostStatus `gorm:"size:20;index;not null;default:DRAFT"`
	Views      int64      `gorm:"not null;default:0"`
	Tags       []Tag      `gorm:"many2many:post_tags;"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  time.Time
}

// IsPublished reports whether the post is visible to readers.
func (p Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// TagNames returns the names of the associated tags.
func (p Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}
