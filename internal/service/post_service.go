package service

import (
	"errors"
	"strings"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/pagination"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// PostService wraps post related database operations.
type PostService struct {
	db   *gorm.DB
	tags *TagService
}

// PostInput represents fields accepted when creating or updating a post.
// A nil TagNames keeps the existing associations on update.
type PostInput struct {
	Title      string
	Slug       string
	Content    string
	Summary    string
	CoverImage string
	Status     string
	TagNames   []string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB, tags *TagService) *PostService {
	if tags == nil {
		tags = NewTagService(gdb)
	}
	return &PostService{db: gdb, tags: tags}
}

// ListPublished returns published posts, newest first.
func (s *PostService) ListPublished(q pagination.Query) (pagination.Page[PostDTO], error) {
	return s.page(s.db.Model(&db.Post{}).Scopes(db.PublishedPosts), q)
}

// ListByTag returns published posts carrying the tag with the given slug.
func (s *PostService) ListByTag(tagSlug string, q pagination.Query) (pagination.Page[PostDTO], error) {
	query := s.db.Model(&db.Post{}).Scopes(db.PublishedPosts, db.PostsWithTagSlug(tagSlug))
	return s.page(query, q)
}

// Search matches the keyword against title or content, published posts only.
func (s *PostService) Search(keyword string, q pagination.Query) (pagination.Page[PostDTO], error) {
	query := s.db.Model(&db.Post{}).Scopes(db.PublishedPosts, db.PostsMatchingKeyword(keyword))
	return s.page(query, q)
}

// ListAllForAdmin returns posts of every status, newest first.
func (s *PostService) ListAllForAdmin(q pagination.Query) (pagination.Page[PostDTO], error) {
	return s.page(s.db.Model(&db.Post{}), q)
}

// GetBySlug returns a published post and counts the read. Every successful
// call increments views by one.
func (s *PostService) GetBySlug(slug string) (*PostDTO, error) {
	var post db.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags").Where("slug = ?", slug).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if !post.IsPublished() {
			return ErrPostNotFound
		}

		if err := tx.Model(&db.Post{}).
			Where("id = ?", post.ID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return err
		}

		return tx.Model(&db.Post{}).Select("views").Where("id = ?", post.ID).Scan(&post.Views).Error
	})
	if err != nil {
		return nil, err
	}

	dto := ToPostDTO(post)
	return &dto, nil
}

// Get fetches a post by id regardless of status, without counting a view.
func (s *PostService) Get(id uint) (*PostDTO, error) {
	var post db.Post
	if err := s.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	dto := ToPostDTO(post)
	return &dto, nil
}

// Create persists a post and upserts its tags in a transaction.
func (s *PostService) Create(input PostInput) (*PostDTO, error) {
	post := db.Post{}
	if err := applyPostInput(&post, input); err != nil {
		return nil, err
	}
	return s.saveWithTags(&post, input.TagNames)
}

// Update applies updates to an existing post.
func (s *PostService) Update(id uint, input PostInput) (*PostDTO, error) {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err := applyPostInput(&existing, input); err != nil {
		return nil, err
	}
	return s.saveWithTags(&existing, input.TagNames)
}

// Delete removes a post and its tag associations. Comments are left alone.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post db.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *PostService) page(query *gorm.DB, q pagination.Query) (pagination.Page[PostDTO], error) {
	var posts []db.Post
	result, err := pagination.Paginate(query, q, &posts, db.WithTags, db.NewestFirst("posts"))
	if err != nil {
		return pagination.Page[PostDTO]{}, err
	}
	return pagination.Map(result, ToPostDTO), nil
}

func (s *PostService) saveWithTags(post *db.Post, tagNames []string) (*PostDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(post).Error; err != nil {
			return translateStoreError(err)
		}

		if tagNames != nil {
			tags := make([]db.Tag, 0, len(tagNames))
			seen := make(map[uint]struct{}, len(tagNames))
			for _, name := range tagNames {
				if strings.TrimSpace(name) == "" {
					continue
				}
				tag, err := s.tags.FindOrCreate(tx, name)
				if err != nil {
					return err
				}
				if _, dup := seen[tag.ID]; dup {
					continue
				}
				seen[tag.ID] = struct{}{}
				tags = append(tags, *tag)
			}

			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return tx.Preload("Tags").First(post, post.ID).Error
	})
	if err != nil {
		return nil, err
	}

	dto := ToPostDTO(*post)
	return &dto, nil
}

func applyPostInput(post *db.Post, input PostInput) error {
	title := strings.TrimSpace(input.Title)
	slug := strings.TrimSpace(input.Slug)
	if title == "" {
		return validationError("title is required")
	}
	if slug == "" {
		return validationError("slug is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return validationError("content is required")
	}

	status, err := db.ParsePostStatus(input.Status)
	if err != nil {
		return validationError("%v", err)
	}

	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = deriveSummary(input.Content)
	}

	post.Title = title
	post.Slug = slug
	post.Content = input.Content
	post.Summary = summary
	post.CoverImage = strings.TrimSpace(input.CoverImage)
	post.Status = status
	return nil
}
