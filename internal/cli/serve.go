package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fitgrid/fitgrid/internal/api"
	"github.com/fitgrid/fitgrid/internal/app/tracker"
	"github.com/fitgrid/fitgrid/internal/infra/sqlite"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fitgrid daemon",
	Long:  `Start the HTTP API serving the day view, scores and weekly series.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := cfg.DataPath()
	if err != nil {
		return err
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	svc, err := tracker.New(tracker.Config{SeedDefaults: cfg.Tracker.SeedDefaults}, db)
	if err != nil {
		return err
	}

	srv := api.NewServer(svc)
	if cfg.Metrics.Enabled {
		srv.EnableMetrics()
	}

	addr := cfg.Addr()
	if override, _ := cmd.Flags().GetString("addr"); override != "" {
		addr = override
	}

	log.Printf("fitgrid listening on %s (store: %s)", addr, path)
	return http.ListenAndServe(addr, srv.Handler())
}
