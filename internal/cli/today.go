package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitgrid/fitgrid/internal/domain"
)

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().String("date", "", "Date to show, YYYY-MM-DD (default: today)")
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show active tasks and the efficiency score for a date",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if day, _ := cmd.Flags().GetString("date"); day != "" {
		parsed, err := domain.ParseDay(day)
		if err != nil {
			return err
		}
		date = parsed
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	statuses := svc.ActiveTasksForDate(date)
	score := svc.DayScore(date)

	fmt.Fprintf(os.Stdout, "%s (%s): %.0f%% (%.1f of %d points)\n",
		domain.DayKey(date), domain.ShortDay(date.Weekday()),
		score.Percentage, score.Earned, score.Total)

	if len(statuses) == 0 {
		fmt.Fprintln(os.Stdout, "No tasks scheduled for this day.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tTYPE\tWEIGHT\tVALUE")
	for _, st := range statuses {
		value := "-"
		if st.Value != nil {
			value = *st.Value
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", st.Task.Name, st.Task.Type, st.Task.Weight, value)
	}
	return w.Flush()
}
