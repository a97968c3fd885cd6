package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/meetfewer/internal/schedule"
)

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// FreeBusyInfo represents availability information for a calendar
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// TimeRange represents a time range
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}

// busyEventFromAPI converts a Google Calendar event to a raw busy event.
// Returns false when the event does not block time: cancelled events,
// transparent ("free") events, and all-day events are skipped.
func busyEventFromAPI(event *calendar.Event) (schedule.RawEvent, bool) {
	if event == nil || event.Status == "cancelled" {
		return schedule.RawEvent{}, false
	}
	if event.Transparency == "transparent" {
		return schedule.RawEvent{}, false
	}
	if event.Start == nil || event.End == nil {
		return schedule.RawEvent{}, false
	}
	// All-day events carry a Date instead of a DateTime.
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return schedule.RawEvent{}, false
	}

	start, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		return schedule.RawEvent{}, false
	}
	end, err := time.Parse(time.RFC3339, event.End.DateTime)
	if err != nil {
		return schedule.RawEvent{}, false
	}

	return schedule.RawEvent{Start: start, End: end}, true
}
