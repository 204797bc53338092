package tui

import (
	"fmt"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/config"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// Currencies offered by the setup form.
var Currencies = []string{"IDR", "USD", "EUR", "SGD", "MYR", "JPY", "GBP", "AUD"}

// SetupValues are the answers collected by the setup form.
type SetupValues struct {
	Currency      string
	Theme         string
	Notifications bool
}

// NewSetupValues starts the form from the current configuration.
func NewSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Currency:      cfg.General.Currency,
		Theme:         cfg.Appearance.Theme,
		Notifications: cfg.Notifications.Enabled,
	}
}

// NewSetupForm builds the first-run wizard writing into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to LifeOS").
				Description("Missions, workouts, tasks and money in one place.\nA few settings first."),
			huh.NewSelect[string]().
				Title("Currency").
				Description("Used to display balances and transactions.").
				Options(huh.NewOptions(Currencies...)...).
				Value(&v.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
			huh.NewConfirm().
				Title("Enable notifications?").
				Description("Rings the terminal bell when your cyber streak goes up.").
				Value(&v.Notifications),
		),
	)
}

// Apply stores the answers in the config through save and activates the
// theme. Turning notifications on goes through the app so the confirmation
// event is sent on the first grant.
func (v SetupValues) Apply(lo *app.App, save func(config.Config) error) error {
	next := lo.Config
	next.General.Currency = v.Currency
	next.Appearance.Theme = v.Theme
	if !v.Notifications {
		next.Notifications.Enabled = false
	}
	if err := save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	lo.Config = next
	theme.SetActive(v.Theme)

	if v.Notifications {
		if _, err := lo.EnableNotifications(save); err != nil {
			return err
		}
	}
	return nil
}
