package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagGymWeek      bool
	flagGymExercises []string
)

var gymCmd = &cobra.Command{
	Use:   "gym",
	Short: "Weekly workout schedule",
	RunE:  runGymShow,
}

var gymShowCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show a day's workout (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGymShow,
}

var gymSetCmd = &cobra.Command{
	Use:   "set <day> <focus...>",
	Short: "Replace a day's focus and exercises",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runGymSet,
}

var gymAddExCmd = &cobra.Command{
	Use:   "add-ex <day> <exercise...>",
	Short: "Append an exercise to a day",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runGymAddEx,
}

var gymRmExCmd = &cobra.Command{
	Use:   "rm-ex <day> <row>",
	Short: "Remove an exercise from a day",
	Args:  cobra.ExactArgs(2),
	RunE:  runGymRmEx,
}

func init() {
	gymShowCmd.Flags().BoolVarP(&flagGymWeek, "week", "w", false, "Show the whole week")
	gymSetCmd.Flags().StringArrayVarP(&flagGymExercises, "ex", "e", nil, "Exercise (repeatable)")

	gymCmd.AddCommand(gymShowCmd, gymSetCmd, gymAddExCmd, gymRmExCmd)
	rootCmd.AddCommand(gymCmd)
}

func parseDayArg(arg string) (string, error) {
	day, ok := gym.ParseDay(arg)
	if !ok {
		return "", model.Invalid("day", fmt.Sprintf("%q is not a weekday (try %s)", arg, strings.Join(gym.Days(), ", ")))
	}
	return day, nil
}

func printDay(lo *app.App, day string) {
	ds := lo.Schedule.Day(day)
	label := day
	if day == gym.WeekdayName(lo.Now().Weekday()) {
		label += " (today)"
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GYM  %s  %s", label, ds.Focus)))
	fmt.Println()
	if len(ds.Exercises) == 0 {
		fmt.Println("  No exercises.")
		return
	}
	rows := make([][]string, 0, len(ds.Exercises))
	for i, ex := range ds.Exercises {
		rows = append(rows, []string{strconv.Itoa(i + 1), ex})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Exercise"},
		Rows:    rows,
	}))
}

func runGymShow(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		if flagGymWeek {
			today := gym.WeekdayName(lo.Now().Weekday())
			rows := make([][]string, 0, 7)
			for _, day := range gym.Days() {
				ds := lo.Schedule.Day(day)
				name := day
				if day == today {
					name = "› " + day
				}
				rows = append(rows, []string{name, ds.Focus, strconv.Itoa(len(ds.Exercises))})
			}
			fmt.Println()
			fmt.Println(cli.RenderTitle("GYM  Week"))
			fmt.Println()
			fmt.Print(cli.RenderTable(cli.Table{
				Headers:    []string{"Day", "Focus", "Exercises"},
				Rows:       rows,
				RightAlign: []int{2},
			}))
			return nil
		}

		day := gym.WeekdayName(lo.Now().Weekday())
		if len(args) == 1 {
			var err error
			if day, err = parseDayArg(args[0]); err != nil {
				return err
			}
		}
		printDay(lo, day)
		return nil
	})
}

func runGymSet(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}
		ds := model.DaySchedule{
			Focus:     strings.Join(args[1:], " "),
			Exercises: flagGymExercises,
		}
		if err := lo.Schedule.SetDay(day, ds); err != nil {
			return err
		}
		printDay(lo, day)
		return nil
	})
}

func runGymAddEx(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}
		edit, err := lo.Schedule.Edit(day)
		if err != nil {
			return err
		}
		if err := edit.AddExercise(strings.Join(args[1:], " ")); err != nil {
			return err
		}
		if err := edit.Commit(); err != nil {
			return err
		}
		printDay(lo, day)
		return nil
	})
}

func runGymRmEx(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		count := len(lo.Schedule.Day(day).Exercises)
		if err != nil || n < 1 || n > count {
			return fmt.Errorf("no exercise %q on %s (have %d)", args[1], day, count)
		}
		edit, err := lo.Schedule.Edit(day)
		if err != nil {
			return err
		}
		edit.RemoveExercise(n - 1)
		if err := edit.Commit(); err != nil {
			return err
		}
		printDay(lo, day)
		return nil
	})
}
