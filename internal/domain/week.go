package domain

import (
	"strings"
	"time"
)

// ─── Weekly Aggregator ──────────────────────────────────────────────────────

// WeekSeries holds chart-ready data for one Monday–Sunday week: four
// parallel 7-element series, index 0 = Monday. Wake and Sleep entries are
// nil on days with nothing usable logged.
type WeekSeries struct {
	Start   time.Time   `json:"-"`
	DayKeys [7]string   `json:"day_keys"`
	Labels  [7]string   `json:"labels"`
	Scores  [7]float64  `json:"scores"`
	Wake    [7]*float64 `json:"wake_hours"`
	Sleep   [7]*float64 `json:"sleep_hours"`
}

// End returns the Sunday closing the week.
func (w WeekSeries) End() time.Time {
	return w.Start.AddDate(0, 0, 6)
}

// Week drives the scoring engine across the week containing date and
// extracts the wake/sleep time series for the charts.
//
// Wake hours come from any time task whose name contains "wake"
// (case-insensitive); sleep hours likewise from "sleep", normalized past
// midnight (00:30 plots as 24.5) so the line stays continuous. When several
// tasks match on the same day, the last one in configuration order wins.
func Week(cfg Config, log Log, date time.Time) WeekSeries {
	series := WeekSeries{Start: MondayOf(date)}

	for i := 0; i < 7; i++ {
		d := series.Start.AddDate(0, 0, i)
		key := DayKey(d)

		series.DayKeys[i] = key
		series.Labels[i] = ShortDay(d.Weekday())
		series.Scores[i] = ScoreDay(cfg, log, d).Percentage

		bucket, ok := log.Day(key)
		if !ok {
			continue
		}
		for _, task := range cfg {
			if task.Type != TaskTime {
				continue
			}
			v, logged := bucket[task.Name]
			if !logged || !Truthy(v) {
				continue
			}
			h, parsed := ParseClock(v)
			if !parsed {
				continue
			}
			name := strings.ToLower(task.Name)
			if strings.Contains(name, "wake") {
				wake := h
				series.Wake[i] = &wake
			}
			if strings.Contains(name, "sleep") {
				sleep := h
				if sleep < 12 {
					sleep += 24
				}
				series.Sleep[i] = &sleep
			}
		}
	}
	return series
}
