package tui

import (
	"strings"

	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/finance"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// parseTransactionEntry reads "+50000 Salary" as income and "25000 Lunch"
// or "-25000 Lunch" as an expense.
func parseTransactionEntry(line string) (decimal.Decimal, string, model.Kind, error) {
	amountStr, desc, _ := strings.Cut(strings.TrimSpace(line), " ")
	kind := model.KindExpense
	switch {
	case strings.HasPrefix(amountStr, "+"):
		kind = model.KindIncome
		amountStr = amountStr[1:]
	case strings.HasPrefix(amountStr, "-"):
		amountStr = amountStr[1:]
	}
	amount, err := finance.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero, "", "", err
	}
	return amount, strings.TrimSpace(desc), kind, nil
}

func (a *App) addTransaction(line string) error {
	amount, desc, kind, err := parseTransactionEntry(line)
	if err != nil {
		return err
	}
	_, err = a.lo.Ledger.Add(amount, desc, kind)
	if err == nil {
		a.cursor[tabFinance] = 0
	}
	return err
}

func (a *App) financeKey(key string) tea.Cmd {
	list := a.lo.Ledger.List()
	selected := a.cursor[tabFinance]

	switch key {
	case "a":
		return a.startInput(inputTransaction, "+50000 Salary / 25000 Lunch", "")
	case "d", "delete":
		if selected < len(list) {
			if err := a.lo.Ledger.Remove(list[selected].ID); err != nil {
				a.setError(err)
			}
		}
	}
	return nil
}

func (a App) renderFinance(cw int) string {
	t := theme.Active
	cur := a.lo.Config.General.Currency
	now := a.today()
	totals := a.lo.Ledger.MonthlyTotals(now.Month(), now.Year())
	balance := a.lo.Ledger.Balance()
	inner := components.CardInnerWidth(cw)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(balance, cur), Color: amountColor(balance)},
		{Label: "Income · " + now.Format("Jan 2006"), Value: cli.FormatMoney(totals.Income, cur), Color: t.Green},
		{Label: "Expense · " + now.Format("Jan 2006"), Value: cli.FormatMoney(totals.Expense, cur), Color: t.Red},
	}, cw))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	list := a.lo.Ledger.List()

	var rows strings.Builder
	if len(list) == 0 {
		rows.WriteString(dimStyle.Render("No transactions. Press a to add one."))
	}
	for i, tx := range list {
		if i > 0 {
			rows.WriteString("\n")
		}
		marker := "  "
		if i == a.cursor[tabFinance] {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("› ")
		}
		amount := cli.FormatSigned(tx, cur)
		color := t.Red
		if tx.Kind == model.KindIncome {
			color = t.Green
		}
		date := dimStyle.Render(padRight(tx.DisplayDate, 11))
		room := inner - 2 - 11 - lipgloss.Width(amount) - 2
		desc := padRight(truncStr(tx.Description, room), room)
		rows.WriteString(marker + date + desc + "  " + lipgloss.NewStyle().Foreground(color).Render(amount))
	}

	b.WriteString(components.ContentCard("Transactions", rows.String(), cw, true))
	return b.String()
}

func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
