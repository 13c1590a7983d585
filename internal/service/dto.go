package service

import (
	"sort"
	"time"

	"github.com/dotblog/internal/db"
)

// PostDTO is the public representation of a post.
type PostDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	CoverImage string    `json:"coverImage"`
	Status     string    `json:"status"`
	Views      int64     `json:"views"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CommentDTO is the public representation of a comment. Email, IP and
// user agent are never exposed.
type CommentDTO struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"postId"`
	ParentID   *uint     `json:"parentId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToPostDTO converts a post model; tag names are sorted.
func ToPostDTO(post db.Post) PostDTO {
	tags := post.TagNames()
	sort.Strings(tags)

	return PostDTO{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Content:    post.Content,
		Summary:    post.Summary,
		CoverImage: post.CoverImage,
		Status:     string(post.Status),
		Views:      post.Views,
		Tags:       tags,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

// ToCommentDTO converts a comment model.
func ToCommentDTO(comment db.Comment) CommentDTO {
	return CommentDTO{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		Status:     string(comment.Status),
		CreatedAt:  comment.CreatedAt,
	}
}
