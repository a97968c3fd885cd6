// Package schedule implements the availability engine: it turns busy
// intervals from one or more calendars into a ranked list of candidate
// meeting slots.
//
// The engine is composed of small, independently testable stages. Aggregate
// normalizes raw events from every watched calendar into one merged busy
// set. Generate enumerates fixed-duration candidate slots inside the working
// hours of each day in the lookahead range. SelectTop scores candidates
// against day and hour preferences and returns the best ones. SuggestSlots
// ties the stages together behind a single call.
//
// All state is request scoped. The engine never reads the system clock; the
// lookahead range is anchored at the explicit start time in RequestConfig,
// which keeps results deterministic under test.
//
// Example usage:
//
//	engine := schedule.NewEngine(source, nil, nil)
//	suggestion, err := engine.SuggestSlots(ctx, schedule.RequestConfig{
//	    Start:           time.Now(),
//	    WorkStartHour:   9,
//	    WorkEndHour:     17,
//	    DurationMinutes: 30,
//	    NumSlots:        3,
//	    DaysAhead:       7,
//	    CalendarIDs:     []string{"primary"},
//	})
package schedule
