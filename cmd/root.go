// Package cmd implements the lifeos CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagDB       string
	flagQuiet    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "lifeos",
	Short:         "Personal life tracker",
	Long:          "Track cyber learning missions, your gym week, tasks and money from the terminal.",
	RunE:          runDashboard,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notifications and hints")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig returns the config, falling back to defaults with a warning
// when the file cannot be parsed.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %s\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// openApp is the shared startup path used by all data commands.
func openApp() (*app.App, error) {
	var bell io.Writer = os.Stderr
	if flagQuiet {
		bell = nil
	}
	return app.Open(app.Options{
		Config:   loadConfig(),
		DBPath:   flagDB,
		LogLevel: flagLogLevel,
		Bell:     bell,
	})
}

// withApp opens the app, runs fn and closes it again.
func withApp(fn func(*app.App) error) error {
	lo, err := openApp()
	if err != nil {
		return err
	}
	defer lo.Close()
	return fn(lo)
}

// resolveRow maps a row number as printed by the list commands (1-based)
// to an item id. A full id is accepted as well.
func resolveRow(arg string, ids []int64) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a row number", arg)
	}
	if n >= 1 && n <= int64(len(ids)) {
		return ids[n-1], nil
	}
	for _, id := range ids {
		if id == n {
			return id, nil
		}
	}
	return 0, fmt.Errorf("no row %d (have %d)", n, len(ids))
}

func hint(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf("  "+format+"\n", args...)
}
