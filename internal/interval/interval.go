package interval

import (
	"fmt"
	"sort"
	"time"
)

// Interval is a half-open time span [Start, End) with Start < End.
// It is a value type; operations return new intervals rather than mutating.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New creates an Interval, rejecting empty or inverted spans.
func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("interval start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether the two half-open intervals share any instant.
// Touching endpoints ([a,b) and [b,c)) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// String formats the interval for logs and error messages.
func (iv Interval) String() string {
	return iv.Start.Format(time.RFC3339) + "/" + iv.End.Format(time.RFC3339)
}

// Merge returns the minimal sorted, non-overlapping union of the given
// intervals. Intervals that merely touch are coalesced as well, so the
// result never contains two spans where one starts exactly where the
// previous ends. The input slice is not modified. Merge is idempotent.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if !next.Start.After(current.End) {
			// Overlapping or touching; extend the current span.
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}

// Clamp restricts a merged, sorted interval list to the given window,
// trimming spans that straddle the window boundary and dropping spans
// entirely outside it.
func Clamp(window Interval, intervals []Interval) []Interval {
	var clamped []Interval
	for _, iv := range intervals {
		if !iv.Overlaps(window) {
			continue
		}
		start, end := iv.Start, iv.End
		if start.Before(window.Start) {
			start = window.Start
		}
		if end.After(window.End) {
			end = window.End
		}
		clamped = append(clamped, Interval{Start: start, End: end})
	}
	return clamped
}

// Subtract returns the free sub-intervals of window not covered by the busy
// intervals. The busy list must already be merged (sorted, non-overlapping);
// spans outside the window are ignored. An empty busy list yields the window
// itself; a window fully covered yields nil.
func Subtract(window Interval, busy []Interval) []Interval {
	var free []Interval
	cursor := window.Start

	for _, b := range Clamp(window, busy) {
		if b.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free
}
