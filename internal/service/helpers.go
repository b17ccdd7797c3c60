package service

import (
	"errors"

	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// textPolicy strips all markup from free-text fields before they are persisted.
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return textPolicy.Sanitize(s)
}

// translateNotFound converts gorm's record-not-found into the app sentinel so
// handlers map it to 404. Other errors bubble unchanged.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return err
}
