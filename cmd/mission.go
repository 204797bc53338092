package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/cli"

	"github.com/spf13/cobra"
)

var missionCmd = &cobra.Command{
	Use:     "mission",
	Aliases: []string{"cyber"},
	Short:   "Cyber learning goal, daily missions and streak",
	RunE:    runMissionList,
}

var missionListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the goal, streak and today's missions",
	Args:  cobra.NoArgs,
	RunE:  runMissionList,
}

var missionAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a mission",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMissionAdd,
}

var missionToggleCmd = &cobra.Command{
	Use:   "toggle <row>",
	Short: "Mark a mission done or not done",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionToggle,
}

var missionRmCmd = &cobra.Command{
	Use:   "rm <row>",
	Short: "Remove a mission",
	Args:  cobra.ExactArgs(1),
	RunE:  runMissionRm,
}

var missionGoalCmd = &cobra.Command{
	Use:   "goal <text...>",
	Short: "Set the main learning goal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMissionGoal,
}

var missionResetDayCmd = &cobra.Command{
	Use:   "reset-day",
	Short: "Uncheck every mission for a new day",
	Args:  cobra.NoArgs,
	RunE:  runMissionResetDay,
}

func init() {
	missionCmd.AddCommand(missionListCmd, missionAddCmd, missionToggleCmd,
		missionRmCmd, missionGoalCmd, missionResetDayCmd)
	rootCmd.AddCommand(missionCmd)
}

func missionIDs(lo *app.App) []int64 {
	missions := lo.Missions.State().Missions
	ids := make([]int64, len(missions))
	for i, m := range missions {
		ids[i] = m.ID
	}
	return ids
}

func printMissions(lo *app.App) {
	s := lo.Missions.State()

	fmt.Println()
	fmt.Println(cli.RenderTitle("CYBER  " + s.Goal))
	fmt.Println()
	fmt.Printf("  Streak   %d days", s.Streak)
	if s.LastCompletionDate != nil {
		fmt.Print(cli.Muted("  (last full day " + s.LastCompletionDate.String() + ")"))
	}
	fmt.Println()
	fmt.Printf("  Progress %s\n\n", cli.RenderProgressBar(s.Progress, 30))

	if len(s.Missions) == 0 {
		fmt.Println("  No missions. Add one with `lifeos mission add`.")
		return
	}
	rows := make([][]string, 0, len(s.Missions))
	for i, m := range s.Missions {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), cli.FormatCheck(m.Completed), m.Text})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Done", "Mission"},
		Rows:    rows,
	}))
}

func runMissionList(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		printMissions(lo)
		return nil
	})
}

func runMissionAdd(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		m, err := lo.Missions.AddMission(strings.Join(args, " "))
		if err != nil {
			return err
		}
		hint("Added %q", m.Text)
		return nil
	})
}

func runMissionToggle(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		id, err := resolveRow(args[0], missionIDs(lo))
		if err != nil {
			return err
		}
		before := lo.Missions.Streak()
		if err := lo.Missions.ToggleMission(id); err != nil {
			return err
		}
		if after := lo.Missions.Streak(); after > before {
			hint("All missions done. Streak is now %d days!", after)
		}
		printMissions(lo)
		return nil
	})
}

func runMissionRm(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		id, err := resolveRow(args[0], missionIDs(lo))
		if err != nil {
			return err
		}
		if err := lo.Missions.RemoveMission(id); err != nil {
			return err
		}
		printMissions(lo)
		return nil
	})
}

func runMissionGoal(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		if err := lo.Missions.SetGoal(strings.Join(args, " ")); err != nil {
			return err
		}
		hint("Goal set to %q", lo.Missions.State().Goal)
		return nil
	})
}

func runMissionResetDay(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		if err := lo.Missions.ResetDay(); err != nil {
			return err
		}
		hint("Missions cleared for a new day.")
		return nil
	})
}
