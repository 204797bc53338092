package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/finance"
	"github.com/theirongolddev/lifeos/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagFinIncome bool
	flagFinMonth  string
	flagFinRecent int
)

var finCmd = &cobra.Command{
	Use:     "fin",
	Aliases: []string{"finance"},
	Short:   "Income and expense ledger",
	RunE:    runFinList,
}

var finListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Args:  cobra.NoArgs,
	RunE:  runFinList,
}

var finAddCmd = &cobra.Command{
	Use:   "add <amount> <description...>",
	Short: "Record an expense, or income with --income",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFinAdd,
}

var finRmCmd = &cobra.Command{
	Use:   "rm <row>",
	Short: "Remove a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runFinRm,
}

var finBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the balance and this month's totals",
	Args:  cobra.NoArgs,
	RunE:  runFinBalance,
}

func init() {
	finListCmd.Flags().StringVarP(&flagFinMonth, "month", "m", "", "Only this month, YYYY-MM, newest first")
	finListCmd.Flags().IntVarP(&flagFinRecent, "recent", "n", 0, "Only the N most recently added")
	finAddCmd.Flags().BoolVarP(&flagFinIncome, "income", "i", false, "Record income instead of an expense")

	finCmd.AddCommand(finListCmd, finAddCmd, finRmCmd, finBalanceCmd)
	rootCmd.AddCommand(finCmd)
}

func txIDs(lo *app.App) []int64 {
	list := lo.Ledger.List()
	ids := make([]int64, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}

func printTransactions(lo *app.App, title string, list []model.Transaction) {
	cur := lo.Config.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	if len(list) == 0 {
		fmt.Println("  No transactions.")
		return
	}

	rowOf := make(map[int64]int)
	for i, id := range txIDs(lo) {
		rowOf[id] = i + 1
	}

	rows := make([][]string, 0, len(list))
	for _, t := range list {
		amount := cli.FormatSigned(t, cur)
		if t.Kind == model.KindIncome {
			amount = cli.Income(amount)
		} else {
			amount = cli.Expense(amount)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", rowOf[t.ID]), t.DisplayDate, t.Description, amount})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:    []string{"#", "Date", "Description", "Amount"},
		Rows:       rows,
		RightAlign: []int{3},
	}))
}

func runFinList(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		switch {
		case flagFinMonth != "":
			m, err := time.Parse("2006-01", flagFinMonth)
			if err != nil {
				return model.Invalid("month", fmt.Sprintf("%q is not YYYY-MM", flagFinMonth))
			}
			printTransactions(lo, "FINANCE  "+m.Format("January 2006"), lo.Ledger.FilterByMonth(m.Month(), m.Year()))
		case flagFinRecent > 0:
			printTransactions(lo, fmt.Sprintf("FINANCE  Last %d", flagFinRecent), lo.Ledger.Recent(flagFinRecent))
		default:
			printTransactions(lo, "FINANCE", lo.Ledger.List())
		}
		return nil
	})
}

func runFinAdd(_ *cobra.Command, args []string) error {
	amount, err := finance.ParseAmount(args[0])
	if err != nil {
		return err
	}
	kind := model.KindExpense
	if flagFinIncome {
		kind = model.KindIncome
	}
	return withApp(func(lo *app.App) error {
		t, err := lo.Ledger.Add(amount, strings.Join(args[1:], " "), kind)
		if err != nil {
			return err
		}
		hint("Recorded %s %s, balance %s", cli.FormatSigned(t, lo.Config.General.Currency), t.Description,
			cli.FormatMoney(lo.Ledger.Balance(), lo.Config.General.Currency))
		return nil
	})
}

func runFinRm(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		id, err := resolveRow(args[0], txIDs(lo))
		if err != nil {
			return err
		}
		if err := lo.Ledger.Remove(id); err != nil {
			return err
		}
		hint("Removed. Balance %s", cli.FormatMoney(lo.Ledger.Balance(), lo.Config.General.Currency))
		return nil
	})
}

func runFinBalance(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		cur := lo.Config.General.Currency
		now := lo.Now()
		totals := lo.Ledger.MonthlyTotals(now.Month(), now.Year())

		fmt.Println()
		fmt.Println(cli.RenderTitle("BALANCE  " + cli.FormatMoney(lo.Ledger.Balance(), cur)))
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{now.Format("January 2006"), "Amount"},
			Rows: [][]string{
				{"Income", cli.Income(cli.FormatMoney(totals.Income, cur))},
				{"Expense", cli.Expense(cli.FormatMoney(totals.Expense, cur))},
				{"---"},
				{"Net", cli.FormatMoney(totals.Net(), cur)},
			},
			RightAlign: []int{1},
		}))
		return nil
	})
}
