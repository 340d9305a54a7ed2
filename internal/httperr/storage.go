package httperr

import (
	"errors"

	"gorm.io/gorm"
)

// MapNotFound turns gorm.ErrRecordNotFound into a not_found business error for entity.
func MapNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(entity)
	}
	return err
}
