package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/meetfewer/internal/interval"
)

// day1 is a Monday.
var day1 = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func dayAt(day time.Time, h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func baseConfig() RequestConfig {
	return RequestConfig{
		Start:           day1,
		WorkStartHour:   9,
		WorkEndHour:     17,
		DurationMinutes: 30,
		NumSlots:        3,
		DaysAhead:       1,
		CalendarIDs:     []string{"primary"},
	}
}

func TestGenerateEmptyCalendar(t *testing.T) {
	// A fully free 09:00-17:00 day holds exactly 16 half-hour slots.
	slots := Generate(nil, baseConfig())
	require.Len(t, slots, 16)

	assert.Equal(t, dayAt(day1, 9, 0), slots[0].Start())
	assert.Equal(t, dayAt(day1, 9, 30), slots[0].End())
	assert.Equal(t, dayAt(day1, 16, 30), slots[15].Start())
	assert.Equal(t, dayAt(day1, 17, 0), slots[15].End())

	for _, s := range slots {
		assert.Zero(t, s.Score, "generator must not assign scores")
	}
}

func TestGenerateFullyBusyDay(t *testing.T) {
	busy := []interval.Interval{{Start: dayAt(day1, 9, 0), End: dayAt(day1, 17, 0)}}
	slots := Generate(busy, baseConfig())
	assert.Empty(t, slots)
}

func TestGenerateDiscardsPartialTail(t *testing.T) {
	cfg := baseConfig()
	cfg.DurationMinutes = 45

	// Free stretch 09:00-10:00 fits one 45-minute slot; the remaining
	// 15 minutes must not produce a partial slot.
	busy := []interval.Interval{{Start: dayAt(day1, 10, 0), End: dayAt(day1, 17, 0)}}
	slots := Generate(busy, cfg)
	require.Len(t, slots, 1)
	assert.Equal(t, dayAt(day1, 9, 0), slots[0].Start())
	assert.Equal(t, dayAt(day1, 9, 45), slots[0].End())
}

func TestGenerateFreeStretchShorterThanDuration(t *testing.T) {
	cfg := baseConfig()
	cfg.DurationMinutes = 60

	// Only a 30-minute gap is free.
	busy := []interval.Interval{
		{Start: dayAt(day1, 9, 0), End: dayAt(day1, 12, 0)},
		{Start: dayAt(day1, 12, 30), End: dayAt(day1, 17, 0)},
	}
	slots := Generate(busy, cfg)
	assert.Empty(t, slots)
}

func TestGenerateMultipleDays(t *testing.T) {
	cfg := baseConfig()
	cfg.DaysAhead = 3

	// Day 2 fully busy; days 1 and 3 fully free.
	day2 := day1.AddDate(0, 0, 1)
	busy := []interval.Interval{{Start: dayAt(day2, 9, 0), End: dayAt(day2, 17, 0)}}

	slots := Generate(busy, cfg)
	require.Len(t, slots, 32)

	// Ascending by start, stable across days.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start().Before(slots[i].Start()))
	}
	// No slot may fall on the busy day.
	for _, s := range slots {
		assert.NotEqual(t, day2.Day(), s.Start().Day())
	}
}

func TestGenerateNoOverlapWithinDay(t *testing.T) {
	busy := []interval.Interval{
		{Start: dayAt(day1, 10, 15), End: dayAt(day1, 11, 5)},
		{Start: dayAt(day1, 14, 0), End: dayAt(day1, 14, 10)},
	}
	slots := Generate(busy, baseConfig())
	require.NotEmpty(t, slots)

	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			assert.False(t, slots[i].Interval.Overlaps(slots[j].Interval),
				"slots %v and %v overlap", slots[i].Interval, slots[j].Interval)
		}
		for _, b := range busy {
			assert.False(t, slots[i].Interval.Overlaps(b),
				"slot %v overlaps busy %v", slots[i].Interval, b)
		}
	}
}

func TestGenerateMidDayStartClampsFirstDay(t *testing.T) {
	cfg := baseConfig()
	cfg.Start = dayAt(day1, 15, 0)

	slots := Generate(nil, cfg)
	require.Len(t, slots, 4)
	assert.Equal(t, dayAt(day1, 15, 0), slots[0].Start())
}

func TestGenerateStartAfterWorkingHours(t *testing.T) {
	cfg := baseConfig()
	cfg.Start = dayAt(day1, 18, 0)
	cfg.DaysAhead = 2

	// Day 1 is over; only day 2 yields slots.
	slots := Generate(nil, cfg)
	require.Len(t, slots, 16)
	assert.Equal(t, dayAt(day1.AddDate(0, 0, 1), 9, 0), slots[0].Start())
}
