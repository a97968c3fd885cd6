package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/teemow/meetfewer/internal/interval"
)

// RawEvent is one busy event as reported by a calendar source, before any
// validation or merging.
type RawEvent struct {
	Start time.Time
	End   time.Time
}

// Slot is a candidate meeting window. The generator creates slots with a
// zero score; the scorer assigns the final score exactly once.
type Slot struct {
	Interval interval.Interval
	Score    float64
}

// Start returns the slot's start time.
func (s Slot) Start() time.Time {
	return s.Interval.Start
}

// End returns the slot's end time.
func (s Slot) End() time.Time {
	return s.Interval.End
}

// Suggestion is the engine's output: the ranked slots plus the total number
// of eligible candidates, so callers can report whether more or fewer than
// the requested count were found.
type Suggestion struct {
	Slots           []Slot
	TotalCandidates int
}

// Source supplies busy events for one calendar identity over a time range.
// Implementations handle authentication, pagination and rate limits; the
// engine only sees the resulting events.
type Source interface {
	BusyEvents(ctx context.Context, calendarID string, from, to time.Time) ([]RawEvent, error)
}

// Preferences holds soft scheduling preferences. Empty sets mean no
// preference; a slot outside the preferred sets scores lower but is never
// excluded.
type Preferences struct {
	// Days maps preferred weekdays. Use WeekdayFromMondayIndex to build
	// the set from the user-facing 0=Monday..6=Sunday numbering.
	Days map[time.Weekday]bool

	// Hours maps preferred start hours of day (0-23).
	Hours map[int]bool
}

// WeekdayFromMondayIndex converts the user-facing weekday numbering
// (0=Monday .. 6=Sunday) to time.Weekday.
func WeekdayFromMondayIndex(idx int) (time.Weekday, error) {
	if idx < 0 || idx > 6 {
		return 0, fmt.Errorf("weekday index %d out of range 0 (Monday) to 6 (Sunday)", idx)
	}
	return time.Weekday((idx + 1) % 7), nil
}
