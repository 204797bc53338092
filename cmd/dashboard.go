package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/cli"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Today at a glance (default command)",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		d := lo.Dashboard()
		cur := lo.Config.General.Currency
		now := lo.Now()

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("%s!  %s", d.Greeting, now.Format("Mon 2 Jan 2006"))))
		fmt.Println()

		overdue := fmt.Sprintf("%d", d.OverdueTasks)
		if d.OverdueTasks > 0 {
			overdue = cli.Warn(overdue)
		}
		rows := [][]string{
			{"Balance", cli.FormatMoney(d.Balance, cur)},
			{"Cyber streak", fmt.Sprintf("%d days", d.Streak)},
			{"Today's mission", d.TodayMission},
			{"Workout (" + d.Weekday + ")", d.TodayWorkout},
			{"---"},
			{"Pending tasks", fmt.Sprintf("%d", d.PendingTasks)},
			{"Overdue tasks", overdue},
			{"---"},
			{"Income " + now.Format("Jan"), cli.Income(cli.FormatMoney(d.Month.Income, cur))},
			{"Expense " + now.Format("Jan"), cli.Expense(cli.FormatMoney(d.Month.Expense, cur))},
			{"Net " + now.Format("Jan"), cli.FormatMoney(d.Month.Net(), cur)},
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Today", ""},
			Rows:    rows,
		}))
		hint("Run `lifeos tui` for the interactive view.")
		return nil
	})
}
