// Package observability exposes Prometheus metrics for the tracker.
// Counters cover the write path (recorded values, config saves) and the
// read path (score and week computations); gauges mirror store size.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Write Path ─────────────────────────────────────────────────────────────

// ValuesRecorded counts log values written, labeled by task type.
var ValuesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fitgrid",
	Subsystem: "log",
	Name:      "values_recorded_total",
	Help:      "Total number of daily log values recorded.",
}, []string{"type"})

// ConfigSaves counts whole-configuration saves.
var ConfigSaves = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fitgrid",
	Subsystem: "config",
	Name:      "saves_total",
	Help:      "Total number of task configuration saves.",
})

// ─── Read Path ──────────────────────────────────────────────────────────────

// ScoresComputed counts day-score computations.
var ScoresComputed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fitgrid",
	Subsystem: "score",
	Name:      "days_computed_total",
	Help:      "Total number of daily efficiency scores computed.",
})

// WeeksComputed counts weekly series computations.
var WeeksComputed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fitgrid",
	Subsystem: "score",
	Name:      "weeks_computed_total",
	Help:      "Total number of weekly chart series computed.",
})

// ─── Store Size ─────────────────────────────────────────────────────────────

// TasksConfigured mirrors the current number of configured tasks.
var TasksConfigured = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "fitgrid",
	Subsystem: "config",
	Name:      "tasks",
	Help:      "Current number of configured tasks.",
})
