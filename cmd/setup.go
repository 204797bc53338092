package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/config"
	"github.com/theirongolddev/lifeos/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	return withApp(func(lo *app.App) error {
		vals := tui.NewSetupValues(lo.Config)
		if err := tui.NewSetupForm(vals).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if err := vals.Apply(lo, config.Save); err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("  Saved to %s\n", config.Path())
		fmt.Println("  Run `lifeos setup` anytime to reconfigure.")
		fmt.Println()
		return nil
	})
}
