package settings

import (
	"fmt"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	CooldownMinutes      *int    `help:"Default cool-down before a decision, in minutes."`
	RegretDelayHours     *int    `help:"Delay before the regret check, in hours."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	Currency             *string `help:"Currency code used for display (e.g. USD, EUR)."`
	StrictMode           *bool   `help:"Disallow deciding before the cool-down ends."`
	Theme                *string `help:"TUI theme (dark|light)."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Validate() error {
	if c.CooldownMinutes != nil && *c.CooldownMinutes <= 0 {
		return fmt.Errorf("cooldown minutes must be positive")
	}
	if c.RegretDelayHours != nil && *c.RegretDelayHours <= 0 {
		return fmt.Errorf("regret delay hours must be positive")
	}
	if c.Theme != nil && *c.Theme != "dark" && *c.Theme != "light" {
		return fmt.Errorf("theme must be dark or light")
	}
	if c.Timezone != nil && !utils.ValidateTimezone(*c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", *c.Timezone)
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Cooldown:              %d min\n", settings.CooldownMinutes)
		fmt.Printf("  Regret Delay:          %d h\n", settings.RegretDelayHours)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Currency:              %s\n", settings.Currency)
		fmt.Printf("  Strict Mode:           %v\n", settings.StrictMode)
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.CooldownMinutes != nil {
		settings.CooldownMinutes = *c.CooldownMinutes
		updated = true
	}
	if c.RegretDelayHours != nil {
		settings.RegretDelayHours = *c.RegretDelayHours
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.Currency != nil {
		settings.Currency = *c.Currency
		updated = true
	}
	if c.StrictMode != nil {
		settings.StrictMode = *c.StrictMode
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
