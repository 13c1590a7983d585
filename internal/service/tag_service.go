package service

import (
	"errors"
	"strings"

	"github.com/dotblog/internal/db"
	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// ListAll returns every tag in insertion order.
func (s *TagService) ListAll() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a tag and derives its slug. Uniqueness is left to the store,
// a collision on name or slug is reported as ErrConflict.
func (s *TagService) Create(name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("tag name is required")
	}

	tag := db.Tag{Name: name, Slug: db.Slugify(name)}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &tag, nil
}

// Delete removes a tag together with its post associations.
func (s *TagService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var tag db.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTagNotFound
			}
			return err
		}

		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// FindOrCreate returns the tag with the given name, creating it when absent.
// The insert runs in a savepoint so that a concurrent insert of the same name
// (or of a name with the same slug) is resolved by reading the winner back.
func (s *TagService) FindOrCreate(tx *gorm.DB, name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("tag name is required")
	}
	if tx == nil {
		tx = s.db
	}

	var tag db.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = db.Tag{Name: name, Slug: db.Slugify(name)}
	err = tx.Transaction(func(inner *gorm.DB) error {
		return inner.Create(&tag).Error
	})
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	var existing db.Tag
	if err := tx.Where("name = ? OR slug = ?", name, tag.Slug).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
