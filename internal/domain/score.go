package domain

import (
	"strconv"
	"time"
)

// ─── Scoring Engine ─────────────────────────────────────────────────────────

// DayScore is the derived efficiency result for one calendar date.
// Never persisted; recomputed from the configuration and log on demand.
type DayScore struct {
	Earned     float64 `json:"earned_points"`
	Total      int     `json:"total_points"`
	Percentage float64 `json:"percentage"`
}

// ScoreDay computes the efficiency score for one date.
//
// Pure function of (cfg, log, date): no side effects, identical results on
// repeated calls. A date with no log entry at all short-circuits to 0%,
// which deliberately differs from "logged but earned nothing" only in how
// it was reached. A day with no scheduled tasks is 0%, never NaN.
func ScoreDay(cfg Config, log Log, date time.Time) DayScore {
	bucket, ok := log.Day(DayKey(date))
	if !ok {
		return DayScore{}
	}

	dayKey := DayKey(date)
	weekday := date.Weekday()

	var earned float64
	var total int
	for _, task := range cfg {
		if !task.ActiveOn(dayKey, weekday) {
			continue
		}
		total += task.weight()
		if v, logged := bucket[task.Name]; logged {
			earned += taskPoints(task, v)
		}
	}

	score := DayScore{Earned: earned, Total: total}
	if total > 0 {
		score.Percentage = earned / float64(total) * 100
	}
	return score
}

// taskPoints returns the points a recorded value earns for a task.
// Every parse failure degrades to 0 points; scoring never errors.
func taskPoints(task TaskDefinition, value string) float64 {
	w := float64(task.weight())
	switch task.Type {
	case TaskBool:
		if Truthy(value) {
			return w
		}
		return 0
	case TaskScore:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return clamp(n, 0, 100) / 100 * w
	case TaskTime:
		return timePoints(task, value, w)
	default:
		return 0
	}
}

// timePoints scores a time-of-day value against the task's target.
//
// "before": at or before the target earns full weight, then credit decays
// by 20% of weight for every 30 minutes late, hitting zero at 150 minutes.
// "after": at or after the target earns full weight, earlier earns nothing.
// The asymmetry (no partial credit on the early side of "after") is the
// product behavior, kept as-is.
func timePoints(task TaskDefinition, value string, w float64) float64 {
	logged, ok := ParseClock(value)
	if !ok {
		return 0
	}
	target, ok := ParseClock(task.Target)
	if !ok {
		return 0
	}

	diff := (logged - target) * 60 // minutes, signed; positive = late
	switch task.Condition {
	case Before:
		if diff <= 0 {
			return w
		}
		return max(0, w*(1-(diff/30)*0.2))
	case After:
		if diff >= 0 {
			return w
		}
		return 0
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
