package schedule

import (
	"sort"
	"time"
)

// Scoring weights. The two preference bonuses are equal and additive; the
// earliness term stays strictly below half a preference step so it can only
// separate slots whose preference scores tie exactly.
const (
	preferredDayBonus  = 2.0
	preferredHourBonus = 2.0

	// earlinessScale converts minutes-past-midday into a score penalty.
	// A full half day (720 minutes) moves the score by 0.5 at most.
	earlinessScale = 0.5 / (12 * 60)
)

// scoreSlot computes the preference score for one slot. Slots outside the
// preferred sets simply miss the bonus; they are never excluded.
func scoreSlot(s Slot, prefs Preferences) float64 {
	score := 0.0

	if len(prefs.Days) > 0 && prefs.Days[s.Start().Weekday()] {
		score += preferredDayBonus
	}
	if len(prefs.Hours) > 0 && prefs.Hours[s.Start().Hour()] {
		score += preferredHourBonus
	}

	// Nudge same-score slots toward the morning: minutes past midday count
	// against the slot, minutes before midday count for it.
	minutesPastMidday := float64(s.Start().Hour()*60+s.Start().Minute()) - 12*60
	score -= minutesPastMidday * earlinessScale

	return score
}

// SelectTop scores the candidates, ranks them best first and returns up to n
// slots. Ranking is by descending score; equal scores fall back to ascending
// start time, so earlier days win ties. Fewer than n candidates simply yield
// fewer slots, and an empty candidate list yields an empty result; neither
// is an error.
//
// The input slice is not modified; scores are assigned on the returned copy
// only, exactly once.
func SelectTop(candidates []Slot, prefs Preferences, n int) []Slot {
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]Slot, len(candidates))
	for i, c := range candidates {
		c.Score = scoreSlot(c, prefs)
		scored[i] = c
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Start().Before(scored[j].Start())
	})

	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

// weekdaySetFromMondayIndices builds a Preferences day set from the
// user-facing 0=Monday..6=Sunday numbering.
func weekdaySetFromMondayIndices(indices []int) (map[time.Weekday]bool, error) {
	if len(indices) == 0 {
		return nil, nil
	}
	days := make(map[time.Weekday]bool, len(indices))
	for _, idx := range indices {
		wd, err := WeekdayFromMondayIndex(idx)
		if err != nil {
			return nil, err
		}
		days[wd] = true
	}
	return days, nil
}

// NewPreferences builds Preferences from user-facing day indices
// (0=Monday..6=Sunday) and start hours of day. Either slice may be empty.
func NewPreferences(dayIndices []int, hours []int) (Preferences, error) {
	days, err := weekdaySetFromMondayIndices(dayIndices)
	if err != nil {
		return Preferences{}, err
	}

	var hourSet map[int]bool
	if len(hours) > 0 {
		hourSet = make(map[int]bool, len(hours))
		for _, h := range hours {
			if h < 0 || h > 23 {
				return Preferences{}, NewInvalidConfigError("preferredHours", "hour of day must be between 0 and 23")
			}
			hourSet[h] = true
		}
	}

	return Preferences{Days: days, Hours: hourSet}, nil
}
