package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds zero-based pagination parameters.
type Query struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (q Query) Offset() int {
	return q.Page * q.Size
}

// Page is the paginated response envelope consumed by the frontend.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// New normalizes page and size: negative pages become 0, sizes fall back to
// defaultSize and are capped at MaxSize.
func New(page, size, defaultSize int) Query {
	if defaultSize < 1 {
		defaultSize = DefaultSize
	}
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	// offset = page*size 不能超过 int32
	if maxPage := math.MaxInt32 / size; page > maxPage {
		page = maxPage
	}
	return Query{Page: page, Size: size}
}

// FromContext extracts `page` and `size` query parameters.
func FromContext(c *gin.Context, defaultSize int) Query {
	page := parseIntOr(c.Query("page"), 0)
	size := parseIntOr(c.Query("size"), defaultSize)
	return New(page, size, defaultSize)
}

// Paginate counts the rows matched by query and loads one page into dest.
// The scopes (ordering, preloads) are only applied to the data query.
func Paginate[T any](query *gorm.DB, q Query, dest *[]T, scopes ...func(*gorm.DB) *gorm.DB) (Page[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	if err := query.Session(&gorm.Session{}).
		Scopes(scopes...).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(dest).Error; err != nil {
		return Page[T]{}, err
	}

	content := *dest
	if content == nil {
		content = []T{}
	}

	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    int((total + int64(q.Size) - 1) / int64(q.Size)),
		Number:        q.Page,
		Size:          q.Size,
	}, nil
}

// Map converts the page content while keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[U]{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Number:        p.Number,
		Size:          p.Size,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
