package service

import (
	"errors"
	"testing"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/pagination"
)

func TestCommentService_CreateIsPendingAndHidden(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCommentService(gdb)

	parent := uint(3)
	created, err := svc.Create(CommentInput{
		PostID:      1,
		ParentID:    &parent,
		AuthorName:  " Reader ",
		AuthorEmail: "reader@example.com",
		Content:     " Nice post ",
	}, RequestMeta{IP: "203.0.113.9", UserAgent: "test-agent"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if created.Status != string(db.CommentStatusPending) {
		t.Fatalf("expected PENDING, got %s", created.Status)
	}
	if created.AuthorName != "Reader" || created.Content != "Nice post" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if created.ParentID == nil || *created.ParentID != 3 {
		t.Fatalf("expected parent id to be kept, got %v", created.ParentID)
	}

	var stored db.Comment
	if err := gdb.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("reload comment: %v", err)
	}
	if stored.IPAddress != "203.0.113.9" || stored.UserAgent != "test-agent" {
		t.Fatalf("expected audit metadata to be stored, got ip=%q ua=%q", stored.IPAddress, stored.UserAgent)
	}

	approved, err := svc.ListApproved(1)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("pending comment must not be listed, got %d", len(approved))
	}

	if _, err := svc.UpdateStatus(created.ID, "approved"); err != nil {
		t.Fatalf("approve comment: %v", err)
	}

	approved, err = svc.ListApproved(1)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != created.ID {
		t.Fatalf("expected approved comment to be listed, got %+v", approved)
	}

	other, err := svc.ListApproved(2)
	if err != nil {
		t.Fatalf("list other post: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("comments of another post leaked: %+v", other)
	}
}

func TestCommentService_CreateValidates(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCommentService(gdb)

	if _, err := svc.Create(CommentInput{Content: "x"}, RequestMeta{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without postId, got %v", err)
	}
	if _, err := svc.Create(CommentInput{PostID: 1, Content: "  "}, RequestMeta{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without content, got %v", err)
	}
}

func TestCommentService_UpdateStatus(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCommentService(gdb)

	created, err := svc.Create(CommentInput{PostID: 1, Content: "hello"}, RequestMeta{})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if _, err := svc.UpdateStatus(created.ID, "SPAM"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(9999, "APPROVED"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}

	rejected, err := svc.UpdateStatus(created.ID, "REJECTED")
	if err != nil {
		t.Fatalf("reject comment: %v", err)
	}
	if rejected.Status != "REJECTED" {
		t.Fatalf("expected REJECTED, got %s", rejected.Status)
	}
}

func TestCommentService_AdminListAndDelete(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCommentService(gdb)

	var ids []uint
	for _, content := range []string{"one", "two", "three"} {
		created, err := svc.Create(CommentInput{PostID: 1, Content: content}, RequestMeta{})
		if err != nil {
			t.Fatalf("create comment: %v", err)
		}
		ids = append(ids, created.ID)
	}
	if _, err := svc.UpdateStatus(ids[0], "APPROVED"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	page, err := svc.ListAllForAdmin(pagination.New(0, 20, 20))
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if page.TotalElements != 3 {
		t.Fatalf("expected all statuses listed, got %d", page.TotalElements)
	}

	if err := svc.Delete(ids[1]); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	if err := svc.Delete(ids[1]); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}

	page, err = svc.ListAllForAdmin(pagination.New(0, 20, 20))
	if err != nil {
		t.Fatalf("list admin after delete: %v", err)
	}
	if page.TotalElements != 2 {
		t.Fatalf("expected 2 comments after delete, got %d", page.TotalElements)
	}
}
