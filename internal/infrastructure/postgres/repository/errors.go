package repository

import (
	"errors"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validID reports whether id can be compared against a uuid column.
// Anything else would fail in Postgres with invalid_text_representation.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func pageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
