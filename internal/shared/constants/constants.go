// Package constants defines application-wide constant values.
package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	// DefaultPage is the first page of paginated listings.
	DefaultPage = 1
	// DefaultPageSize is used when the caller does not specify a page size.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100
)

// TimeLayout is the wire format for date/time parameters and payloads.
const TimeLayout = "2006-01-02T15:04:05"
