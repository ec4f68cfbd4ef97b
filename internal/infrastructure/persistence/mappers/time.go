// Package mappers converts between domain aggregates and persistence
// models. Persistence stores timestamps as Unix milliseconds.
package mappers

import "time"

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
