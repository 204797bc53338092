package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/backup"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagBackupYes bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export, import or wipe all data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every store to a JSON backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore stores from a JSON backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupImport,
}

var backupResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data",
	Args:  cobra.NoArgs,
	RunE:  runBackupReset,
}

func init() {
	backupResetCmd.Flags().BoolVarP(&flagBackupYes, "yes", "y", false, "Skip the confirmation prompt")

	backupCmd.AddCommand(backupExportCmd, backupImportCmd, backupResetCmd)
	rootCmd.AddCommand(backupCmd)
}

func runBackupExport(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		now := lo.Now()
		path := backup.FileName(now)
		if len(args) == 1 {
			path = args[0]
		}
		if err := lo.Backup.ExportFile(path, now); err != nil {
			return err
		}
		fmt.Printf("  Backup written to %s\n", path)
		return nil
	})
}

func runBackupImport(_ *cobra.Command, args []string) error {
	return withApp(func(lo *app.App) error {
		restored, err := lo.Backup.ImportFile(args[0])
		if err != nil {
			return err
		}
		if len(restored) == 0 {
			fmt.Println("  Backup contained no data, nothing changed.")
			return nil
		}
		fmt.Printf("  Restored %s\n", strings.Join(restored, ", "))
		return nil
	})
}

func runBackupReset(_ *cobra.Command, _ []string) error {
	if !flagBackupYes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Delete ALL LifeOS data?").
			Description("Missions, schedule, tasks and transactions. This cannot be undone.").
			Affirmative("Delete everything").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	return withApp(func(lo *app.App) error {
		if err := lo.Backup.ResetAll(); err != nil {
			return err
		}
		fmt.Println("  All data deleted.")
		return nil
	})
}
