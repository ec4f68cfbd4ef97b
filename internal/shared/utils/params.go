package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"telmesh/internal/shared/constants"
	"telmesh/internal/shared/errors"
)

// ParseIDParam parses a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ParseTimeParam parses a required query parameter in the wire time layout.
func ParseTimeParam(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, errors.NewBadRequestError("missing " + name + " parameter")
	}
	t, err := time.Parse(constants.TimeLayout, raw)
	if err != nil {
		return time.Time{}, errors.NewBadRequestError("invalid " + name + " parameter", err.Error())
	}
	return t, nil
}

// ParseTimeRange parses start/end query parameters and validates ordering.
// A malformed value or start after end is a caller-input error.
func ParseTimeRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := ParseTimeParam(c, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseTimeParam(c, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.NewValidationError("start must not be after end")
	}
	return start, end, nil
}
