// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of clean architecture — it depends on nothing.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ─── Task Types ─────────────────────────────────────────────────────────────

// TaskType selects the scoring algorithm for a task.
type TaskType string

const (
	// TaskBool is a did-it-or-not habit. Any truthy value earns full weight.
	TaskBool TaskType = "bool"
	// TaskTime is a time-of-day target (wake up before 06:00, in bed after 23:00).
	TaskTime TaskType = "time"
	// TaskScore is a self-rated 0–100 value earning a proportional share of weight.
	TaskScore TaskType = "score"
)

// Condition says which side of the target a time task must land on.
type Condition string

const (
	Before Condition = "before"
	After  Condition = "after"
)

// TaskDefinition is one configured habit/goal.
//
// Name doubles as the log key and display label. StartDate/EndDate are
// inclusive YYYY-MM-DD bounds; a task with StartDate == EndDate is a
// one-time task whose Days holds exactly that date's weekday.
type TaskDefinition struct {
	Name      string     `json:"name"`
	Type      TaskType   `json:"type"`
	Weight    int        `json:"weight"`
	Target    string     `json:"target,omitempty"`    // "HH:MM", time tasks only
	Condition Condition  `json:"condition,omitempty"` // time tasks only
	Days      WeekdaySet `json:"days"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
}

// OneTime reports whether the task is scheduled for a single date.
func (t TaskDefinition) OneTime() bool {
	return t.StartDate != "" && t.StartDate == t.EndDate
}

// Validate checks a task the way the configuration form would before save.
// Tasks that fail validation must never reach the stores.
func (t TaskDefinition) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrNameRequired
	}
	switch t.Type {
	case TaskBool, TaskScore:
	case TaskTime:
		if _, ok := ParseClock(t.Target); !ok {
			return fmt.Errorf("%w: %q", ErrBadTarget, t.Target)
		}
		if t.Condition != Before && t.Condition != After {
			return fmt.Errorf("%w: %q", ErrBadCondition, t.Condition)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
	for _, d := range []string{t.StartDate, t.EndDate} {
		if d != "" {
			if _, err := ParseDay(d); err != nil {
				return err
			}
		}
	}
	if t.Days == 0 && !t.OneTime() {
		return ErrNoDaysSelected
	}
	return nil
}

// weight returns the task's weight coerced to a non-negative integer.
// A malformed weight must degrade to zero points, never break scoring.
func (t TaskDefinition) weight() int {
	if t.Weight < 0 {
		return 0
	}
	return t.Weight
}

// ─── Configuration ──────────────────────────────────────────────────────────

// Config is the ordered task configuration. Order determines display order
// and which wake/sleep task wins in the weekly series; it has no scoring
// significance.
type Config []TaskDefinition

// Append adds a task at the end of the configuration.
func (c *Config) Append(t TaskDefinition) {
	*c = append(*c, t)
}

// ReplaceAt swaps the task at position i for an edited record.
func (c Config) ReplaceAt(i int, t TaskDefinition) error {
	if i < 0 || i >= len(c) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	c[i] = t
	return nil
}

// Normalize stamps defaults onto every task: missing date bounds become
// Jan 1 / Dec 31 of now's year, and a one-time task with no weekday set
// gets the weekday of its date. Called once when a configuration is loaded
// or written so scoring stays a pure read.
func (c Config) Normalize(now time.Time) {
	start, end := DefaultBounds(now)
	for i := range c {
		t := &c[i]
		if t.StartDate == "" {
			t.StartDate = start
		}
		if t.EndDate == "" {
			t.EndDate = end
		}
		if t.Days == 0 && t.OneTime() {
			if d, err := ParseDay(t.StartDate); err == nil {
				t.Days = t.Days.With(d.Weekday())
			}
		}
	}
}

// DefaultBounds returns the default start/end date keys for now's year.
// Stamped once at load/edit time, not re-derived per query, so a task does
// not silently change schedule mid-session at a year rollover.
func DefaultBounds(now time.Time) (start, end string) {
	y := now.Year()
	return fmt.Sprintf("%04d-01-01", y), fmt.Sprintf("%04d-12-31", y)
}

// DefaultConfig returns the five starter tasks seeded on first run.
func DefaultConfig(now time.Time) Config {
	start, end := DefaultBounds(now)
	every := AllWeekdays()
	weekdays := ParseDays("Mon,Tue,Wed,Thu,Fri")
	return Config{
		{Name: "Wake up", Type: TaskTime, Weight: 20, Target: "06:00", Condition: Before, Days: every, StartDate: start, EndDate: end},
		{Name: "Gym", Type: TaskBool, Weight: 20, Days: weekdays, StartDate: start, EndDate: end},
		{Name: "Deep Work", Type: TaskBool, Weight: 20, Days: weekdays, StartDate: start, EndDate: end},
		{Name: "Reading", Type: TaskBool, Weight: 20, Days: every, StartDate: start, EndDate: end},
		{Name: "Sleep", Type: TaskTime, Weight: 20, Target: "23:00", Condition: Before, Days: every, StartDate: start, EndDate: end},
	}
}
