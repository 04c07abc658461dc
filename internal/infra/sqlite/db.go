// Package sqlite persists the task configuration and the daily log.
// It is the single durable store behind the tracker; everything else is
// recomputed from these two tables on demand.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection with typed operations.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies all
// migrations. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single-writer local store: one pooled connection keeps writes
	// serialized and makes ":memory:" databases behave (every new pool
	// connection would otherwise see a fresh empty database).
	conn.SetMaxOpenConns(1)

	// WAL keeps reads cheap during saves.
	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
		`PRAGMA foreign_keys = ON`,
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	db := &DB{db: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) migrate() error {
	for _, stmt := range Migrations() {
		if _, err := db.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		// Ordered task configuration
		`CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			position   INTEGER NOT NULL,
			name       TEXT NOT NULL,
			type       TEXT NOT NULL,
			weight     INTEGER NOT NULL DEFAULT 0,
			target     TEXT NOT NULL DEFAULT '',
			condition  TEXT NOT NULL DEFAULT '',
			days       TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			end_date   TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position)`,

		// Sparse daily log: one row per (date, task name)
		`CREATE TABLE IF NOT EXISTS log_entries (
			day        TEXT NOT NULL,
			task_name  TEXT NOT NULL,
			value      TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (day, task_name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_log_day ON log_entries(day)`,
	}
}
