package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// Calendar identities are email addresses: unbounded and PII. Always reduce
// them with these helpers before attaching them to a metric label.

// ExtractCalendarDomain extracts the domain part from a calendar email address.
// This reduces cardinality by using the domain instead of the full address.
//
// Example:
//
//	ExtractCalendarDomain("jane@example.com")  // "example.com"
//	ExtractCalendarDomain("primary")           // "primary"
//	ExtractCalendarDomain("invalid@")          // "unknown"
//	ExtractCalendarDomain("")                  // "unknown"
func ExtractCalendarDomain(calendarID string) string {
	if calendarID == "" {
		return "unknown"
	}
	if calendarID == "primary" {
		return "primary"
	}

	parts := strings.Split(calendarID, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// Common operation types for Google API metrics.
// Status and OAuth constants are defined in config.go.
const (
	OperationListEvents    = "list_events"
	OperationFreeBusy      = "freebusy"
	OperationListCalendars = "list_calendars"
	OperationGetCalendar   = "get_calendar"
)
