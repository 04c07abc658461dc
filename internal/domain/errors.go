package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Configuration validation (surfaced at save time, blocks the save)
	ErrNameRequired    = errors.New("task name is required")
	ErrUnknownType     = errors.New("unknown task type")
	ErrBadTarget       = errors.New("time task needs a valid HH:MM target")
	ErrBadCondition    = errors.New("time task condition must be before or after")
	ErrNoDaysSelected  = errors.New("repeating task needs at least one weekday")
	ErrIndexOutOfRange = errors.New("task index out of range")

	// Lookup / input errors
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidDate  = errors.New("invalid date, want YYYY-MM-DD")
)
