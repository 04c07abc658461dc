package sqlite

import (
	"fmt"

	"github.com/fitgrid/fitgrid/internal/domain"
)

// ─── Daily Log Operations ───────────────────────────────────────────────────

// UpsertValue records a value for a task on a date, overwriting any
// previous value for the same (day, task) pair.
func (db *DB) UpsertValue(day, taskName, value string) error {
	_, err := db.db.Exec(`
		INSERT INTO log_entries (day, task_name, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(day, task_name) DO UPDATE SET
			value      = excluded.value,
			updated_at = datetime('now')
	`, day, taskName, value)
	if err != nil {
		return fmt.Errorf("record value: %w", err)
	}
	return nil
}

// LoadLog returns the full daily log as the sparse in-memory mapping.
func (db *DB) LoadLog() (domain.Log, error) {
	rows, err := db.db.Query(`SELECT day, task_name, value FROM log_entries`)
	if err != nil {
		return nil, fmt.Errorf("load log: %w", err)
	}
	defer rows.Close()

	log := domain.Log{}
	for rows.Next() {
		var day, name, value string
		if err := rows.Scan(&day, &name, &value); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		log.Record(day, name, value)
	}
	return log, rows.Err()
}

// DayValues returns the logged values for one date. A date with no entries
// returns ok=false, which downstream treats as "nothing logged", not an
// error.
func (db *DB) DayValues(day string) (domain.DayLog, bool, error) {
	rows, err := db.db.Query(`SELECT task_name, value FROM log_entries WHERE day = ?`, day)
	if err != nil {
		return nil, false, fmt.Errorf("load day: %w", err)
	}
	defer rows.Close()

	bucket := domain.DayLog{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, false, fmt.Errorf("scan day entry: %w", err)
		}
		bucket[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return bucket, len(bucket) > 0, nil
}
