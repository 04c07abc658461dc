package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fitgrid/fitgrid/internal/domain"
)

// ─── Task Configuration Operations ──────────────────────────────────────────

// ReplaceTasks saves the whole configuration, replacing whatever was stored.
// The save contract is whole-record: the caller always writes the complete
// ordered sequence, so positions are rewritten from scratch.
func (db *DB) ReplaceTasks(cfg domain.Config) error {
	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for i, task := range cfg {
		_, err := tx.Exec(`
			INSERT INTO tasks (id, position, name, type, weight, target, condition, days, start_date, end_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), i, task.Name, string(task.Type), task.Weight,
			task.Target, string(task.Condition), task.Days.String(),
			task.StartDate, task.EndDate)
		if err != nil {
			return fmt.Errorf("insert task %q: %w", task.Name, err)
		}
	}
	return tx.Commit()
}

// LoadTasks returns the stored configuration in insertion order.
// An empty store returns an empty (non-nil) Config and no error.
func (db *DB) LoadTasks() (domain.Config, error) {
	rows, err := db.db.Query(`
		SELECT name, type, weight, target, condition, days, start_date, end_date
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	cfg := domain.Config{}
	for rows.Next() {
		var (
			task domain.TaskDefinition
			typ  string
			cond string
			days string
		)
		if err := rows.Scan(&task.Name, &typ, &task.Weight, &task.Target,
			&cond, &days, &task.StartDate, &task.EndDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.Type = domain.TaskType(typ)
		task.Condition = domain.Condition(cond)
		task.Days = domain.ParseDays(days)
		cfg = append(cfg, task)
	}
	return cfg, rows.Err()
}

// TaskCount returns the number of configured tasks.
func (db *DB) TaskCount() (int, error) {
	var n int
	err := db.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}
