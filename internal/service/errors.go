package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation 表示请求缺少必填字段或字段取值非法。
	ErrValidation = errors.New("validation failed")
	// ErrConflict 表示违反唯一约束（slug、名称、用户名）。
	ErrConflict = errors.New("unique constraint violated")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// translateStoreError maps duplicate-key failures onto ErrConflict.
func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
