package schedule

import (
	"fmt"
	"time"
)

// InvalidConfigError indicates a RequestConfig invariant was violated.
// It is returned synchronously, before any calendar fetch begins.
type InvalidConfigError struct {
	Field  string // Config field that failed validation
	Reason string // Human-readable description of the violation
}

// Error implements the error interface
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid request config: %s: %s", e.Field, e.Reason)
}

// NewInvalidConfigError creates a new InvalidConfigError
func NewInvalidConfigError(field, reason string) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: reason}
}

// InvalidEventError indicates a malformed busy event (start at or after end)
// was received from a calendar source. The engine does not repair or drop
// such events; the caller decides whether to fix the source.
type InvalidEventError struct {
	CalendarID string // Source calendar the event came from
	Start      time.Time
	End        time.Time
}

// Error implements the error interface
func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid event from calendar %q: start %s is not before end %s",
		e.CalendarID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// SourceUnavailableError indicates a required calendar source could not be
// fetched. The whole request fails; availability computed from partial data
// could wrongly present a busy slot as free.
type SourceUnavailableError struct {
	CalendarID string // Calendar that could not be fetched
	Err        error  // Underlying fetch error
}

// Error implements the error interface
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("calendar source %q unavailable: %v", e.CalendarID, e.Err)
}

// Unwrap returns the underlying fetch error
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
