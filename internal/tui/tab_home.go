package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderHome(cw int) string {
	t := theme.Active
	d := a.lo.Dashboard()
	cur := a.lo.Config.General.Currency

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render(d.Greeting + "!"))
	b.WriteString(dimStyle.Render("  " + a.today().Format("Monday, 2 January 2006")))
	b.WriteString("\n\n")

	overdueColor := t.TextPrimary
	if d.OverdueTasks > 0 {
		overdueColor = t.Red
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(d.Balance, cur), Color: amountColor(d.Balance)},
		{Label: "Cyber streak", Value: fmt.Sprintf("%d days", d.Streak), Color: t.Accent},
		{Label: "Pending tasks", Value: fmt.Sprintf("%d", d.PendingTasks)},
		{Label: "Overdue", Value: fmt.Sprintf("%d", d.OverdueTasks), Color: overdueColor},
	}, cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 2)
	mission := components.ContentCard("Today's mission",
		truncStr(d.TodayMission, components.CardInnerWidth(widths[0])), widths[0], false)
	workout := components.ContentCard("Workout · "+d.Weekday,
		truncStr(d.TodayWorkout, components.CardInnerWidth(widths[1])), widths[1], false)
	b.WriteString(components.CardRow([]string{mission, workout}))
	b.WriteString("\n")

	month := a.today().Format("January")
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income · " + month, Value: cli.FormatMoney(d.Month.Income, cur), Color: t.Green},
		{Label: "Expense · " + month, Value: cli.FormatMoney(d.Month.Expense, cur), Color: t.Red},
		{Label: "Net · " + month, Value: cli.FormatMoney(d.Month.Net(), cur), Color: amountColor(d.Month.Net())},
	}, cw))
	return b.String()
}

func amountColor(v decimal.Decimal) lipgloss.Color {
	if v.IsNegative() {
		return theme.Active.Red
	}
	return theme.Active.Green
}
