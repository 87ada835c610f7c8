package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrRecordNotFound is returned, wrapped, when a lookup matches no row.
var ErrRecordNotFound = errors.New("record not found")

func wrapFind(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s not found: %w", entity, ErrRecordNotFound)
	}
	return fmt.Errorf("failed to find %s: %w", entity, err)
}
