package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapFind(t *testing.T) {
	err := wrapFind(gorm.ErrRecordNotFound, "profile")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.EqualError(t, err, "profile not found: record not found")

	dbErr := errors.New("connection reset")
	err = wrapFind(dbErr, "document")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
