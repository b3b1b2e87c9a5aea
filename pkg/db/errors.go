package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateName reports whether the provided error is the engine's
// unique-constraint violation, raised when a product name already exists.
func IsDuplicateName(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound reports whether the provided error is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
