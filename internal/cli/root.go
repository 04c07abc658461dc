// Package cli implements the fitgrid command line interface.
// The daemon (`fitgrid serve`) and the direct commands (`task`, `log`,
// `today`, `week`) share one local SQLite store; the direct commands open
// it in-process so the tracker works without a running server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitgrid/fitgrid/internal/app/tracker"
	"github.com/fitgrid/fitgrid/internal/daemon"
	"github.com/fitgrid/fitgrid/internal/infra/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "fitgrid",
	Short: "Local-first habit and goal tracker",
	Long: `fitgrid tracks configurable daily tasks (habits, time-of-day targets,
self-rated scores) and computes a 0-100% efficiency score per day plus
weekly trend series. All state lives in a local SQLite database under
~/.fitgrid (override with FITGRID_HOME).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the daemon configuration from its default location.
func loadConfig() (daemon.Config, error) {
	path, err := daemon.ConfigPath()
	if err != nil {
		return daemon.Config{}, err
	}
	return daemon.Load(path)
}

// openService opens the local store and builds a tracker service.
// The caller must Close the returned DB.
func openService() (*tracker.Service, *sqlite.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.DataPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc, err := tracker.New(tracker.Config{SeedDefaults: cfg.Tracker.SeedDefaults}, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return svc, db, nil
}
