package handlers

import (
	"time"

	"telmesh/internal/shared/constants"
	"telmesh/internal/shared/errors"
)

// parseDate parses a request body date in the wire layout
// (2006-01-02T15:04:05).
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(constants.TimeLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid " + field + " format, expected " + constants.TimeLayout)
	}
	return t, nil
}
