package service

import (
	"errors"
	"strings"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/pagination"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService wraps comment related operations.
type CommentService struct {
	db *gorm.DB
}

// CommentInput represents the fields a reader may submit.
type CommentInput struct {
	PostID      uint
	ParentID    *uint
	AuthorName  string
	AuthorEmail string
	Content     string
}

// RequestMeta 记录评论提交者的审计信息。
type RequestMeta struct {
	IP        string
	UserAgent string
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// ListApproved returns the approved comments of a post in store order.
func (s *CommentService) ListApproved(postID uint) ([]CommentDTO, error) {
	var comments []db.Comment
	if err := s.db.
		Where("post_id = ? AND status = ?", postID, db.CommentStatusApproved).
		Find(&comments).Error; err != nil {
		return nil, err
	}

	result := make([]CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, ToCommentDTO(comment))
	}
	return result, nil
}

// Create stores a new comment. The status is always PENDING.
func (s *CommentService) Create(input CommentInput, meta RequestMeta) (*CommentDTO, error) {
	if input.PostID == 0 {
		return nil, validationError("postId is required")
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, validationError("content is required")
	}

	comment := db.Comment{
		PostID:      input.PostID,
		ParentID:    input.ParentID,
		AuthorName:  strings.TrimSpace(input.AuthorName),
		AuthorEmail: strings.TrimSpace(input.AuthorEmail),
		Content:     content,
		Status:      db.CommentStatusPending,
		IPAddress:   meta.IP,
		UserAgent:   meta.UserAgent,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	dto := ToCommentDTO(comment)
	return &dto, nil
}

// ListAllForAdmin returns comments of every status, newest first.
func (s *CommentService) ListAllForAdmin(q pagination.Query) (pagination.Page[CommentDTO], error) {
	var comments []db.Comment
	page, err := pagination.Paginate(s.db.Model(&db.Comment{}), q, &comments, db.NewestFirst("comments"))
	if err != nil {
		return pagination.Page[CommentDTO]{}, err
	}
	return pagination.Map(page, ToCommentDTO), nil
}

// UpdateStatus moves a comment to another moderation state.
func (s *CommentService) UpdateStatus(id uint, rawStatus string) (*CommentDTO, error) {
	status, err := db.ParseCommentStatus(rawStatus)
	if err != nil {
		return nil, validationError("%v", err)
	}

	var comment db.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&comment).Update("status", status).Error; err != nil {
		return nil, err
	}
	comment.Status = status

	dto := ToCommentDTO(comment)
	return &dto, nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(id uint) error {
	result := s.db.Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
