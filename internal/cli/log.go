package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitgrid/fitgrid/internal/domain"
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().String("date", "", "Date to log for, YYYY-MM-DD (default: today)")
}

var logCmd = &cobra.Command{
	Use:   "log TASK VALUE",
	Short: "Record a value for a task",
	Long: `Record a raw value for a task on a date. The value form depends on
the task type: "true"/"false" for bool tasks, "HH:MM" for time tasks,
"0".."100" for score tasks. Values are stored as given; anything a task
cannot interpret simply earns no points.`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	day, _ := cmd.Flags().GetString("date")
	if day == "" {
		day = domain.DayKey(time.Now())
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.RecordValue(day, args[0], args[1]); err != nil {
		return err
	}

	date, _ := domain.ParseDay(day)
	score := svc.DayScore(date)
	fmt.Fprintf(os.Stdout, "Logged %s = %s on %s, day at %.0f%%\n",
		args[0], args[1], day, score.Percentage)
	return nil
}
