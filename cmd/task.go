package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/tasks"

	"github.com/spf13/cobra"
)

var (
	flagTaskDesc     string
	flagTaskDue      string
	flagTaskPriority string
	flagTaskOverdue  bool
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "To-do list with deadlines and priorities",
	RunE:    runTaskList,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <row>",
	Short: "Mark a task done or not done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskToggle,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <row>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

func init() {
	taskListCmd.Flags().BoolVar(&flagTaskOverdue, "overdue", false, "Only show overdue tasks")
	taskAddCmd.Flags().StringVarP(&flagTaskDesc, "desc", "d", "", "Description")
	taskAddCmd.Flags().StringVar(&flagTaskDue, "due", "", "Deadline, YYYY-MM-DD")
	taskAddCmd.Flags().StringVarP(&flagTaskPriority, "priority", "p", "normal", "low, normal or high")

	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskToggleCmd, taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}

func taskIDs(lo *app.App) []int64 {
	list := lo.Tasks.List()
	ids := make([]int64, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}

func printTasks(lo *app.App) {
	today := model.DateOf(lo.Now())
	list := lo.Tasks.List()
	if flagTaskOverdue {
		list = lo.Tasks.Overdue(today)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TASKS  %d pending", lo.Tasks.Pending())))
	fmt.Println()
	if len(list) == 0 {
		fmt.Println("  Nothing here.")
		return
	}

	// Row numbers always refer to the full list so toggle and rm agree.
	rowOf := make(map[int64]int)
	for i, id := range taskIDs(lo) {
		rowOf[id] = i + 1
	}

	rows := make([][]string, 0, len(list))
	for _, t := range list {
		due := cli.FormatDate(t.Deadline)
		if tasks.IsOverdue(t, today) {
			due = cli.Warn(due + " !")
		}
		title := t.Title
		if t.Description != "" {
			title += cli.Muted("  " + t.Description)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rowOf[t.ID]),
			cli.FormatCheck(t.Completed),
			title,
			string(t.Priority),
			due,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Done", "Task", "Priority", "Due"},
		Rows:    rows,
	}))
}

func runTaskList(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		printTasks(lo)
		return nil
	})
}

func runTaskAdd(_ *cobra.Command, args []string) error {
	due, err := model.ParseDate(flagTaskDue)
	if err != nil {
		return model.Invalid("deadline", err.Error())
	}
	return withApp(func(lo *app.App) error {
		t, err := lo.Tasks.Add(tasks.Fields{
			Title:       strings.Join(args, " "),
			Description: flagTaskDesc,
			Deadline:    due,
			Priority:    flagTaskPriority,
		})
		if err != nil {
			return err
		}
		hint("Added %q", t.Title)
		return nil
	})
}

func runTaskToggle(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		id, err := resolveRow(args[0], taskIDs(lo))
		if err != nil {
			return err
		}
		if err := lo.Tasks.ToggleComplete(id); err != nil {
			return err
		}
		printTasks(lo)
		return nil
	})
}

func runTaskRm(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		id, err := resolveRow(args[0], taskIDs(lo))
		if err != nil {
			return err
		}
		if err := lo.Tasks.Remove(id); err != nil {
			return err
		}
		printTasks(lo)
		return nil
	})
}
