package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/lifeos/internal/config"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/tui"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagTUINoWatch bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagTUINoWatch, "no-watch", false, "Do not reload when another process changes the data")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	firstRun := !config.Exists()

	// A bell line would tear the alt screen. Notifications still reach the log.
	flagQuiet = true
	lo, err := openApp()
	if err != nil {
		return err
	}
	defer lo.Close()

	theme.SetActive(lo.Config.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events chan tea.Msg
	if !flagTUINoWatch {
		events = make(chan tea.Msg, 1)
		w, err := store.Watch(ctx, lo.DB.Path(), func() {
			select {
			case events <- tui.ReloadMsg{}:
			default:
			}
		}, store.WithErrorHandler(func(err error) {
			lo.Log.Warn("watch error", zap.Error(err))
		}))
		if err != nil {
			lo.Log.Warn("storage watcher unavailable", zap.Error(err))
			events = nil
		} else {
			defer w.Close()
		}
	}

	p := tea.NewProgram(tui.NewApp(lo, events, firstRun), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
