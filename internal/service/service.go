// Package service contains the per-entity orchestration layer: request
// validation, existence checks, and the business rules sitting between the
// HTTP handlers and the store.
package service

import (
	"time"

	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// requestDateLayout is the wire format for date fields in request bodies.
const requestDateLayout = "2006-01-02"

// parseRequestDate parses a date field from a request body, naming the field
// in the validation error.
func parseRequestDate(field, value string) (time.Time, error) {
	t, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.Validationf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}
