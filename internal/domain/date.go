package domain

import (
	"fmt"
	"time"
)

// ─── Calendar Dates ─────────────────────────────────────────────────────────
// Dates are handled as local-calendar YYYY-MM-DD keys. The format sorts
// lexicographically in chronological order, so range checks are plain
// string comparisons. Weekdays always derive from the local date, never
// UTC, to avoid off-by-one-day errors near midnight.

// DayKey formats t's local calendar date as a YYYY-MM-DD key.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDay parses a YYYY-MM-DD key into local midnight of that date.
func ParseDay(key string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return t, nil
}

// MondayOf returns local midnight of the Monday starting t's week.
// A Sunday maps to the previous Monday (ISO week).
func MondayOf(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	d := t.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// ParseClock parses an "HH:MM" time-of-day value into fractional hours
// (6:30 → 6.5). Returns false for anything that does not parse.
func ParseClock(s string) (float64, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}
