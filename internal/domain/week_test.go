package domain

import (
	"testing"
	"time"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", localDate(2025, time.January, 8), "2025-01-06"},
		{"monday itself", localDate(2025, time.January, 6), "2025-01-06"},
		{"sunday maps to previous monday", localDate(2025, time.January, 12), "2025-01-06"},
		{"saturday", localDate(2025, time.January, 11), "2025-01-06"},
		{"next monday", localDate(2025, time.January, 13), "2025-01-13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(MondayOf(tt.in)); got != tt.want {
				t.Errorf("MondayOf(%s) = %s, want %s", DayKey(tt.in), got, tt.want)
			}
		})
	}
}

func TestWeek_LabelsAndRange(t *testing.T) {
	// Any Wednesday: the week must run from the preceding Monday to Sunday.
	series := Week(Config{}, Log{}, localDate(2025, time.January, 8))

	if got := DayKey(series.Start); got != "2025-01-06" {
		t.Errorf("Start = %s, want 2025-01-06", got)
	}
	if got := DayKey(series.End()); got != "2025-01-12" {
		t.Errorf("End = %s, want 2025-01-12", got)
	}
	wantLabels := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if series.Labels != wantLabels {
		t.Errorf("Labels = %v, want %v", series.Labels, wantLabels)
	}
}

func TestWeek_Scores(t *testing.T) {
	cfg := Config{boolTask("Gym", 20)}
	log := Log{}
	log.Record("2025-01-06", "Gym", "true")  // Mon: 100%
	log.Record("2025-01-08", "Gym", "false") // Wed: logged, earns 0

	series := Week(cfg, log, localDate(2025, time.January, 8))
	if !approx(series.Scores[0], 100) {
		t.Errorf("Scores[Mon] = %v, want 100", series.Scores[0])
	}
	if series.Scores[1] != 0 {
		t.Errorf("Scores[Tue] = %v, want 0 (nothing logged)", series.Scores[1])
	}
	if series.Scores[2] != 0 {
		t.Errorf("Scores[Wed] = %v, want 0", series.Scores[2])
	}
}

func TestWeek_WakeSleepSeries(t *testing.T) {
	cfg := Config{
		timeTask("Wake up", "06:00", Before, 20),
		timeTask("Sleep", "23:00", Before, 20),
	}
	log := Log{}
	log.Record("2025-01-06", "Wake up", "06:30")
	log.Record("2025-01-06", "Sleep", "23:15")
	log.Record("2025-01-07", "Sleep", "00:30") // past midnight

	series := Week(cfg, log, localDate(2025, time.January, 6))

	if series.Wake[0] == nil || !approx(*series.Wake[0], 6.5) {
		t.Errorf("Wake[Mon] = %v, want 6.5", series.Wake[0])
	}
	if series.Sleep[0] == nil || !approx(*series.Sleep[0], 23.25) {
		t.Errorf("Sleep[Mon] = %v, want 23.25", series.Sleep[0])
	}
	// 00:30 normalizes to 24.5 for continuous charting across midnight.
	if series.Sleep[1] == nil || !approx(*series.Sleep[1], 24.5) {
		t.Errorf("Sleep[Tue] = %v, want 24.5", series.Sleep[1])
	}
	if series.Wake[1] != nil {
		t.Errorf("Wake[Tue] = %v, want nil (not logged)", *series.Wake[1])
	}
	for i := 2; i < 7; i++ {
		if series.Wake[i] != nil || series.Sleep[i] != nil {
			t.Errorf("day %d: wake/sleep should be nil with no log", i)
		}
	}
}

func TestWeek_LastMatchingTaskWins(t *testing.T) {
	cfg := Config{
		timeTask("Wake up", "06:00", Before, 20),
		timeTask("Wake up (weekend)", "08:00", Before, 20),
	}
	log := Log{}
	log.Record("2025-01-06", "Wake up", "06:00")
	log.Record("2025-01-06", "Wake up (weekend)", "08:30")

	series := Week(cfg, log, localDate(2025, time.January, 6))
	if series.Wake[0] == nil || !approx(*series.Wake[0], 8.5) {
		t.Errorf("Wake[Mon] = %v, want 8.5 (last matching task overwrites)", series.Wake[0])
	}
}

func TestWeek_NonTimeTasksIgnored(t *testing.T) {
	cfg := Config{boolTask("Wake up walk", 20)}
	log := Log{}
	log.Record("2025-01-06", "Wake up walk", "true")

	series := Week(cfg, log, localDate(2025, time.January, 6))
	if series.Wake[0] != nil {
		t.Errorf("Wake[Mon] = %v, want nil (bool task never feeds the series)", *series.Wake[0])
	}
}
