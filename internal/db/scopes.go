package db

import (
	"strings"

	"gorm.io/gorm"
)

// Query scopes shared by the services. They assume the base model is Post or
// Comment and always qualify columns with the table name, since the tag
// filter joins post_tags and tags.

// PublishedPosts restricts a posts query to PUBLISHED rows.
func PublishedPosts(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.status = ?", PostStatusPublished)
}

// PostsWithTagSlug keeps posts associated with the tag identified by slug.
func PostsWithTagSlug(slug string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", slug)
	}
}

// likeEscaper makes % and _ literal. '!' is used as the escape character
// because a backslash literal is parsed differently by sqlite and mysql.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// PostsMatchingKeyword is a case-insensitive substring match on title or
// content. LIKE wildcards in the keyword match literally. Case folding is
// left to the database; sqlite's LOWER only folds ASCII.
func PostsMatchingKeyword(keyword string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("(LOWER(posts.title) LIKE ? ESCAPE '!' OR LOWER(posts.content) LIKE ? ESCAPE '!')", pattern, pattern)
	}
}

// NewestFirst orders by creation time, id breaking ties.
func NewestFirst(table string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(table + ".created_at desc").Order(table + ".id desc")
	}
}

// WithTags preloads the tag association of posts.
func WithTags(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Tags")
}
