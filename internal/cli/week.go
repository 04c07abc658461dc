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
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().String("date", "", "Any date inside the week, YYYY-MM-DD (default: today)")
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly score and wake/sleep series",
	RunE:  runWeek,
}

func runWeek(cmd *cobra.Command, args []string) error {
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

	series := svc.WeekSeries(date)
	fmt.Fprintf(os.Stdout, "Week %s .. %s\n",
		domain.DayKey(series.Start), domain.DayKey(series.End()))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tDATE\tSCORE\tWAKE\tSLEEP")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s\t%s\n",
			series.Labels[i], series.DayKeys[i], series.Scores[i],
			formatHour(series.Wake[i]), formatHour(series.Sleep[i]))
	}
	return w.Flush()
}

// formatHour renders a fractional-hour value as HH:MM, "-" when absent.
// Sleep values past midnight come in normalized above 24 and wrap back.
func formatHour(h *float64) string {
	if h == nil {
		return "-"
	}
	v := *h
	if v >= 24 {
		v -= 24
	}
	hours := int(v)
	minutes := int((v-float64(hours))*60 + 0.5)
	if minutes == 60 {
		hours, minutes = hours+1, 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
