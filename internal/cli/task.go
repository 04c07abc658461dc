package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fitgrid/fitgrid/internal/domain"
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)

	taskAddCmd.Flags().String("type", "bool", "Task type: bool, time or score")
	taskAddCmd.Flags().Int("weight", 10, "Maximum points the task contributes to a day")
	taskAddCmd.Flags().String("target", "", "Target time HH:MM (time tasks)")
	taskAddCmd.Flags().String("condition", "before", "before or after the target (time tasks)")
	taskAddCmd.Flags().String("days", "Mon,Tue,Wed,Thu,Fri,Sat,Sun", "Scheduled weekdays, comma-joined")
	taskAddCmd.Flags().String("start", "", "First active date YYYY-MM-DD (default: Jan 1)")
	taskAddCmd.Flags().String("end", "", "Last active date YYYY-MM-DD (default: Dec 31)")
	taskAddCmd.Flags().String("on", "", "One-time task date YYYY-MM-DD (overrides days/start/end)")
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task configuration",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured tasks in display order",
	RunE:  runTaskList,
}

func runTaskList(cmd *cobra.Command, args []string) error {
	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks := svc.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stdout, "No tasks configured.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tTYPE\tWEIGHT\tSCHEDULE\tACTIVE")
	for i, t := range tasks {
		schedule := t.Days.String()
		if t.OneTime() {
			schedule = "once"
		}
		extra := ""
		if t.Type == domain.TaskTime {
			extra = fmt.Sprintf(" (%s %s)", t.Condition, t.Target)
		}
		fmt.Fprintf(w, "%d\t%s\t%s%s\t%d\t%s\t%s..%s\n",
			i, t.Name, t.Type, extra, t.Weight, schedule, t.StartDate, t.EndDate)
	}
	return w.Flush()
}

var taskAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a task to the configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	weight, _ := cmd.Flags().GetInt("weight")
	target, _ := cmd.Flags().GetString("target")
	condition, _ := cmd.Flags().GetString("condition")
	days, _ := cmd.Flags().GetString("days")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	once, _ := cmd.Flags().GetString("on")

	task := domain.TaskDefinition{
		Name:      args[0],
		Type:      domain.TaskType(typ),
		Weight:    weight,
		Target:    target,
		Condition: domain.Condition(condition),
		Days:      domain.ParseDays(days),
		StartDate: start,
		EndDate:   end,
	}
	if task.Type != domain.TaskTime {
		task.Target = ""
		task.Condition = ""
	}
	if once != "" {
		// One-time task: single date, weekday filled in by normalization.
		task.StartDate = once
		task.EndDate = once
		task.Days = 0
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.AddTask(task); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added %q (%d tasks configured)\n", task.Name, len(svc.Tasks()))
	return nil
}
