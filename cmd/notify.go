package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/config"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notifications",
}

var notifyEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Allow streak notifications",
	Args:  cobra.NoArgs,
	RunE:  runNotifyEnable,
}

func init() {
	notifyCmd.AddCommand(notifyEnableCmd)
	rootCmd.AddCommand(notifyCmd)
}

func runNotifyEnable(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		granted, err := lo.EnableNotifications(config.Save)
		if err != nil {
			return err
		}
		if !granted {
			fmt.Println("  Notifications are already enabled.")
		}
		return nil
	})
}
