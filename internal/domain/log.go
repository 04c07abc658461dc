package domain

// ─── Daily Log ──────────────────────────────────────────────────────────────

// DayLog maps task name → raw logged value for one date. Values stay raw
// strings ("true", "06:45", "80"); each task type interprets its own.
type DayLog map[string]string

// Log is the sparse date-keyed journal: YYYY-MM-DD → DayLog.
//
// Presence is explicit: an absent key means "not logged", which every
// consumer must treat as no credit, not as an error. A present-but-falsy
// value (a bool task logged "false") also earns nothing, but remains
// distinguishable from never having been logged.
type Log map[string]DayLog

// Record sets the value for a task on a date, creating the day bucket if
// needed.
func (l Log) Record(day, task, value string) {
	bucket, ok := l[day]
	if !ok {
		bucket = DayLog{}
		l[day] = bucket
	}
	bucket[task] = value
}

// Day returns the bucket for a date, or ok=false when nothing was logged.
func (l Log) Day(day string) (DayLog, bool) {
	bucket, ok := l[day]
	return bucket, ok
}

// Value returns the recorded value for a task on a date.
func (l Log) Value(day, task string) (string, bool) {
	bucket, ok := l[day]
	if !ok {
		return "", false
	}
	v, ok := bucket[task]
	return v, ok
}

// Truthy reports whether a raw value counts as completed for bool tasks.
// Empty, "false" and "0" are the falsy forms the original front-end wrote.
func Truthy(v string) bool {
	return v != "" && v != "false" && v != "0"
}
