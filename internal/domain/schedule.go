package domain

import "time"

// ─── Schedule Resolver ──────────────────────────────────────────────────────

// ActiveOn reports whether the task is scheduled on the given date.
//
// dayKey is the date's YYYY-MM-DD form and weekday its local weekday; the
// caller computes both once per date and reuses them across the whole
// configuration. A task whose StartDate sorts after its EndDate is active
// on no date at all, which is exactly what the two range comparisons yield.
func (t TaskDefinition) ActiveOn(dayKey string, weekday time.Weekday) bool {
	if t.StartDate != "" && dayKey < t.StartDate {
		return false
	}
	if t.EndDate != "" && dayKey > t.EndDate {
		return false
	}
	return t.Days.Contains(weekday)
}
