package schedule

import (
	"time"

	"github.com/teemow/meetfewer/internal/interval"
)

// Generate enumerates candidate slots of the configured duration across the
// lookahead range, skipping everything covered by the merged busy set. For
// each scanned day the working window [workStart, workEnd) is carved down to
// its free sub-intervals, and a duration-sized window slides across each of
// them in duration-sized steps. A free stretch shorter than the duration
// yields nothing; a fully busy day yields nothing for that day.
//
// On the first day the window additionally starts no earlier than
// cfg.Start, so a request anchored mid-day never proposes slots already in
// the past relative to its own anchor.
//
// Slots come back in ascending start order with a zero score.
func Generate(busy []interval.Interval, cfg RequestConfig) []Slot {
	duration := cfg.Duration()
	firstDay := startOfDay(cfg.Start)

	var slots []Slot
	for d := 0; d < cfg.DaysAhead; d++ {
		day := firstDay.AddDate(0, 0, d)
		windowStart := day.Add(time.Duration(cfg.WorkStartHour) * time.Hour)
		windowEnd := day.Add(time.Duration(cfg.WorkEndHour) * time.Hour)

		if d == 0 && cfg.Start.After(windowStart) {
			windowStart = cfg.Start
		}
		if !windowStart.Before(windowEnd) {
			continue
		}

		window := interval.Interval{Start: windowStart, End: windowEnd}
		for _, free := range interval.Subtract(window, busy) {
			for start := free.Start; !start.Add(duration).After(free.End); start = start.Add(duration) {
				slots = append(slots, Slot{
					Interval: interval.Interval{Start: start, End: start.Add(duration)},
				})
			}
		}
	}

	return slots
}
