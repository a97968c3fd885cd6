// Package calendar wraps the Google Calendar API for availability queries.
//
// The Client reads busy events, free/busy blocks and calendar metadata for
// one authorized account. It implements schedule.Source, so the availability
// engine can pull busy events from any number of calendars through it.
// All access is read-only.
package calendar
