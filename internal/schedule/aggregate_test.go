package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/meetfewer/internal/interval"
)

func TestAggregateMergesAcrossCalendars(t *testing.T) {
	sources := []SourceEvents{
		{
			CalendarID: "primary",
			Events: []RawEvent{
				{Start: dayAt(day1, 9, 0), End: dayAt(day1, 10, 0)},
			},
		},
		{
			CalendarID: "colleague@example.com",
			Events: []RawEvent{
				{Start: dayAt(day1, 9, 30), End: dayAt(day1, 11, 0)},
				{Start: dayAt(day1, 14, 0), End: dayAt(day1, 15, 0)},
			},
		},
	}

	busy, err := Aggregate(sources)
	require.NoError(t, err)

	want := []interval.Interval{
		{Start: dayAt(day1, 9, 0), End: dayAt(day1, 11, 0)},
		{Start: dayAt(day1, 14, 0), End: dayAt(day1, 15, 0)},
	}
	assert.Equal(t, want, busy)
}

func TestAggregateEmptySources(t *testing.T) {
	busy, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, busy)

	busy, err = Aggregate([]SourceEvents{{CalendarID: "primary"}})
	require.NoError(t, err)
	assert.Empty(t, busy)
}

func TestAggregateRejectsMalformedEvent(t *testing.T) {
	sources := []SourceEvents{
		{
			CalendarID: "colleague@example.com",
			Events: []RawEvent{
				{Start: dayAt(day1, 10, 0), End: dayAt(day1, 10, 0)},
			},
		},
	}

	_, err := Aggregate(sources)
	require.Error(t, err)

	var invalid *InvalidEventError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "colleague@example.com", invalid.CalendarID)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	events := []RawEvent{
		{Start: dayAt(day1, 10, 0), End: dayAt(day1, 11, 0)},
		{Start: dayAt(day1, 9, 0), End: dayAt(day1, 10, 30)},
	}
	_, err := Aggregate([]SourceEvents{{CalendarID: "primary", Events: events}})
	require.NoError(t, err)
	assert.Equal(t, dayAt(day1, 10, 0), events[0].Start)
}
