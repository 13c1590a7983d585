package db

import (
	"fmt"
	"strings"
)

// PostStatus 文章状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// ParsePostStatus normalizes raw input; an empty value defaults to DRAFT.
func ParsePostStatus(raw string) (PostStatus, error) {
	switch status := PostStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case "":
		return PostStatusDraft, nil
	case PostStatusDraft, PostStatusPublished:
		return status, nil
	default:
		return "", fmt.Errorf("unknown post status %q", raw)
	}
}

// CommentStatus 评论审核状态
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "PENDING"
	CommentStatusApproved CommentStatus = "APPROVED"
	CommentStatusRejected CommentStatus = "REJECTED"
)

// ParseCommentStatus accepts only the known moderation states.
func ParseCommentStatus(raw string) (CommentStatus, error) {
	switch status := CommentStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("unknown comment status %q", raw)
	}
}
