package schedule

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teemow/meetfewer/internal/interval"
)

// SourceEvents pairs a calendar identity with the raw events fetched from it.
type SourceEvents struct {
	CalendarID string
	Events     []RawEvent
}

// Aggregate flattens the events of every source into one busy set and
// returns its merged union. Every calendar, the user's own included, is
// treated as just another busy-interval source: the user is unavailable
// whenever any watched calendar is busy.
//
// An event whose start is not before its end fails the whole aggregation
// with an *InvalidEventError. Inputs are never mutated.
func Aggregate(sources []SourceEvents) ([]interval.Interval, error) {
	var all []interval.Interval
	for _, src := range sources {
		for _, ev := range src.Events {
			if !ev.Start.Before(ev.End) {
				return nil, &InvalidEventError{
					CalendarID: src.CalendarID,
					Start:      ev.Start,
					End:        ev.End,
				}
			}
			all = append(all, interval.Interval{Start: ev.Start, End: ev.End})
		}
	}
	return interval.Merge(all), nil
}

// fetchAll fetches busy events for every calendar in parallel and joins the
// results in calendar order. Each fetch writes only its own result slot; the
// slots are read after every fetch has completed. If any fetch fails the
// remaining ones are canceled and the first failure is returned as a
// *SourceUnavailableError, discarding all partial results.
func fetchAll(ctx context.Context, source Source, calendarIDs []string, from, to time.Time, timeout time.Duration) ([]SourceEvents, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make([]SourceEvents, len(calendarIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range calendarIDs {
		g.Go(func() error {
			events, err := source.BusyEvents(gctx, id, from, to)
			if err != nil {
				return &SourceUnavailableError{CalendarID: id, Err: err}
			}
			results[i] = SourceEvents{CalendarID: id, Events: events}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
