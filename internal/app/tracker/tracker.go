// Package tracker is the application service tying the scoring engine to
// the persistent stores.
//
// The service:
//  1. Loads the configuration and log once at startup, seeding the
//     five-task default set on first run
//  2. Normalizes the configuration on load and on every write, so scoring
//     stays a pure read
//  3. Serves the presentation contract (day view, day score, week series)
//  4. Persists every mutation back to SQLite before acknowledging it
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/fitgrid/fitgrid/internal/domain"
	"github.com/fitgrid/fitgrid/internal/infra/observability"
	"github.com/fitgrid/fitgrid/internal/infra/sqlite"
)

// Config controls service behavior.
type Config struct {
	SeedDefaults bool             // Seed the starter tasks when the store is empty
	Now          func() time.Time // Clock override for tests (default: time.Now)
}

// DefaultConfig returns the standard service configuration.
func DefaultConfig() Config {
	return Config{SeedDefaults: true}
}

// Service owns the in-memory state and the durable store. There is exactly
// one logical writer, but the HTTP layer reads concurrently, so state is
// guarded by a RWMutex.
type Service struct {
	mu  sync.RWMutex
	db  *sqlite.DB
	cfg domain.Config
	log domain.Log
	now func() time.Time
}

// TaskStatus pairs an active task with its recorded value for a date.
// Value is nil when nothing was logged, which is distinct from a logged
// falsy value.
type TaskStatus struct {
	Task  domain.TaskDefinition `json:"task"`
	Value *string               `json:"value,omitempty"`
}

// New loads state from db and returns a ready service.
func New(cfg Config, db *sqlite.DB) (*Service, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	s := &Service{db: db, now: now}

	tasks, err := db.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if len(tasks) == 0 && cfg.SeedDefaults {
		tasks = domain.DefaultConfig(now())
		if err := db.ReplaceTasks(tasks); err != nil {
			return nil, fmt.Errorf("seed configuration: %w", err)
		}
	}
	tasks.Normalize(now())
	s.cfg = tasks

	log, err := db.LoadLog()
	if err != nil {
		return nil, fmt.Errorf("load log: %w", err)
	}
	s.log = log

	observability.TasksConfigured.Set(float64(len(tasks)))
	return s, nil
}

// ─── Configuration ──────────────────────────────────────────────────────────

// Tasks returns a copy of the ordered configuration.
func (s *Service) Tasks() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.Config, len(s.cfg))
	copy(out, s.cfg)
	return out
}

// AddTask validates and appends a task, then persists the configuration.
func (s *Service) AddTask(task domain.TaskDefinition) error {
	return s.mutateConfig(func(cfg *domain.Config) error {
		cfg.Append(task)
		return nil
	}, task)
}

// ReplaceTask validates the edited record and swaps it in at index.
func (s *Service) ReplaceTask(index int, task domain.TaskDefinition) error {
	return s.mutateConfig(func(cfg *domain.Config) error {
		return cfg.ReplaceAt(index, task)
	}, task)
}

func (s *Service) mutateConfig(apply func(*domain.Config) error, task domain.TaskDefinition) error {
	// Validate against the normalized form the store will actually hold.
	probe := domain.Config{task}
	probe.Normalize(s.now())
	if err := probe[0].Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(domain.Config, len(s.cfg))
	copy(next, s.cfg)
	if err := apply(&next); err != nil {
		return err
	}
	next.Normalize(s.now())

	if err := s.db.ReplaceTasks(next); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	s.cfg = next

	observability.ConfigSaves.Inc()
	observability.TasksConfigured.Set(float64(len(next)))
	return nil
}

// ─── Daily Log ──────────────────────────────────────────────────────────────

// RecordValue stores a raw value for a task on a date. The value is kept
// verbatim; each task type interprets it at scoring time, so a value that
// later fails to parse simply earns nothing.
func (s *Service) RecordValue(day, taskName, value string) error {
	if _, err := domain.ParseDay(day); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.findTask(taskName)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrTaskNotFound, taskName)
	}

	if err := s.db.UpsertValue(day, taskName, value); err != nil {
		return err
	}
	s.log.Record(day, taskName, value)

	observability.ValuesRecorded.WithLabelValues(string(task.Type)).Inc()
	return nil
}

func (s *Service) findTask(name string) (domain.TaskDefinition, bool) {
	for _, t := range s.cfg {
		if t.Name == name {
			return t, true
		}
	}
	return domain.TaskDefinition{}, false
}

// ─── Presentation Contract ──────────────────────────────────────────────────

// ActiveTasksForDate returns the tasks scheduled on date, in configuration
// order, each paired with its recorded value if any.
func (s *Service) ActiveTasksForDate(date time.Time) []TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dayKey := domain.DayKey(date)
	weekday := date.Weekday()

	var out []TaskStatus
	for _, task := range s.cfg {
		if !task.ActiveOn(dayKey, weekday) {
			continue
		}
		status := TaskStatus{Task: task}
		if v, ok := s.log.Value(dayKey, task.Name); ok {
			status.Value = &v
		}
		out = append(out, status)
	}
	return out
}

// DayScore computes the efficiency score for date.
func (s *Service) DayScore(date time.Time) domain.DayScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	observability.ScoresComputed.Inc()
	return domain.ScoreDay(s.cfg, s.log, date)
}

// WeekSeries computes the chart series for the week containing date.
func (s *Service) WeekSeries(date time.Time) domain.WeekSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	observability.WeeksComputed.Inc()
	return domain.Week(s.cfg, s.log, date)
}
