package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fitgrid/fitgrid/internal/app/tracker"
	"github.com/fitgrid/fitgrid/internal/domain"
)

// ─── Tracker API ────────────────────────────────────────────────────────────
//
// GET  /api/tasks                 — ordered task configuration
// POST /api/tasks                 — append a task
// PUT  /api/tasks/{index}         — replace the task at a position
// GET  /api/days/{date}           — day score + active tasks with values
// POST /api/days/{date}/values    — record one value for a task
// GET  /api/weeks/{date}          — chart-ready series for that date's week

// handleListTasks returns the full ordered configuration.
// GET /api/tasks
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": s.tracker.Tasks(),
	})
}

// handleAddTask appends a new task to the configuration.
// POST /api/tasks
func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var task domain.TaskDefinition
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task JSON: "+err.Error())
		return
	}
	if err := s.tracker.AddTask(task); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"tasks": s.tracker.Tasks(),
	})
}

// handleReplaceTask swaps the task at a position for an edited record.
// PUT /api/tasks/{index}
func (s *Server) handleReplaceTask(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "task index must be an integer")
		return
	}
	var task domain.TaskDefinition
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task JSON: "+err.Error())
		return
	}
	if err := s.tracker.ReplaceTask(index, task); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tasks": s.tracker.Tasks(),
	})
}

// handleDay returns the day view: score plus active tasks with values.
// GET /api/days/{date}
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score := s.tracker.DayScore(date)
	statuses := s.tracker.ActiveTasksForDate(date)
	if statuses == nil {
		statuses = []tracker.TaskStatus{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  domain.DayKey(date),
		"label": domain.ShortDay(date.Weekday()),
		"score": score,
		"tasks": statuses,
	})
}

// handleRecordValue records a raw value for a task on a date.
// POST /api/days/{date}/values
func (s *Server) handleRecordValue(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "date")

	var req struct {
		Task  string          `json:"task"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request JSON: "+err.Error())
		return
	}
	if req.Task == "" {
		writeError(w, http.StatusBadRequest, "task name is required")
		return
	}

	if err := s.tracker.RecordValue(day, req.Task, rawValueString(req.Value)); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	// The caller's next step is always a score refresh; save it a round trip.
	date, _ := domain.ParseDay(day)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  day,
		"score": s.tracker.DayScore(date),
	})
}

// handleWeek returns the weekly chart series.
// GET /api/weeks/{date}
func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series := s.tracker.WeekSeries(date)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"start":  domain.DayKey(series.Start),
		"end":    domain.DayKey(series.End()),
		"series": series,
	})
}

// rawValueString converts a logged JSON value to its raw string form.
// The log stores strings; booleans and numbers keep their literal text
// ("true", "80") so scoring interprets them the same way the original
// front-end values were interpreted.
func rawValueString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.TrimSpace(string(raw))
}
