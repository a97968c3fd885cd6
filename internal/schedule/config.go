package schedule

import (
	"fmt"
	"time"
)

// DefaultFetchTimeout bounds how long the engine waits for all calendar
// sources combined. It applies uniformly to every fetch in a request.
const DefaultFetchTimeout = 30 * time.Second

// RequestConfig is the complete, explicit configuration for one suggestion
// request. There is no process-wide default config; every call supplies its
// own value.
type RequestConfig struct {
	// Start anchors the lookahead range. Slots are never suggested before
	// this instant. The engine does not read the system clock; callers
	// that want "from now" pass time.Now() here.
	Start time.Time

	// WorkStartHour and WorkEndHour bound the working window of each
	// calendar day, in the location of Start (24-hour clock, half-open).
	WorkStartHour int
	WorkEndHour   int

	// DurationMinutes is the meeting length. Candidate starts step by the
	// same amount, so candidates within one free stretch do not overlap.
	DurationMinutes int

	// NumSlots is the maximum number of suggestions to return.
	NumSlots int

	// DaysAhead is the number of calendar days to scan, starting with the
	// day of Start.
	DaysAhead int

	// CalendarIDs lists every calendar whose busy time blocks suggestions.
	// The first entry is conventionally the user's own calendar, but all
	// entries are treated uniformly.
	CalendarIDs []string

	// Preferences are soft ranking preferences; see Preferences.
	Preferences Preferences

	// FetchTimeout bounds the calendar fetches for this request.
	// Zero means DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// Validate checks the RequestConfig invariants. It returns an
// *InvalidConfigError describing the first violation found.
func (c *RequestConfig) Validate() error {
	if c.Start.IsZero() {
		return NewInvalidConfigError("start", "start time must be set")
	}
	if c.WorkStartHour < 0 || c.WorkStartHour > 24 {
		return NewInvalidConfigError("workStartHour", fmt.Sprintf("hour %d out of range 0-24", c.WorkStartHour))
	}
	if c.WorkEndHour < 0 || c.WorkEndHour > 24 {
		return NewInvalidConfigError("workEndHour", fmt.Sprintf("hour %d out of range 0-24", c.WorkEndHour))
	}
	if c.WorkStartHour >= c.WorkEndHour {
		return NewInvalidConfigError("workStartHour", fmt.Sprintf("work start hour %d must be before work end hour %d", c.WorkStartHour, c.WorkEndHour))
	}
	if c.DurationMinutes <= 0 {
		return NewInvalidConfigError("durationMinutes", fmt.Sprintf("duration must be positive, got %d", c.DurationMinutes))
	}
	if c.NumSlots <= 0 {
		return NewInvalidConfigError("numSlots", fmt.Sprintf("number of slots must be positive, got %d", c.NumSlots))
	}
	if c.DaysAhead <= 0 {
		return NewInvalidConfigError("daysAhead", fmt.Sprintf("days ahead must be positive, got %d", c.DaysAhead))
	}
	if len(c.CalendarIDs) == 0 {
		return NewInvalidConfigError("calendarIds", "at least one calendar is required")
	}
	for i, id := range c.CalendarIDs {
		if id == "" {
			return NewInvalidConfigError("calendarIds", fmt.Sprintf("calendar id at index %d is empty", i))
		}
	}
	if c.FetchTimeout < 0 {
		return NewInvalidConfigError("fetchTimeout", "fetch timeout must not be negative")
	}
	return nil
}

// Duration returns the meeting length as a time.Duration.
func (c *RequestConfig) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// fetchTimeout returns the configured timeout or the default.
func (c *RequestConfig) fetchTimeout() time.Duration {
	if c.FetchTimeout > 0 {
		return c.FetchTimeout
	}
	return DefaultFetchTimeout
}

// lookaheadEnd returns the exclusive end of the range events are fetched
// for: the end of working hours on the last scanned day.
func (c *RequestConfig) lookaheadEnd() time.Time {
	day := startOfDay(c.Start).AddDate(0, 0, c.DaysAhead-1)
	return day.Add(time.Duration(c.WorkEndHour) * time.Hour)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
