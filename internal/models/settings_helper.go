package models

import (
	"fmt"

	"github.com/kmcrane/urge/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingCooldownMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.CooldownMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing cooldown_minutes: %w", err)
			}
		case constants.SettingRegretDelayHours:
			if _, err := fmt.Sscanf(value, "%d", &settings.RegretDelayHours); err != nil {
				return Settings{}, fmt.Errorf("parsing regret_delay_hours: %w", err)
			}
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingCurrency:
			settings.Currency = value
		case constants.SettingStrictMode:
			settings.StrictMode = value == "true"
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingCooldownMinutes:      fmt.Sprintf("%d", settings.CooldownMinutes),
		constants.SettingRegretDelayHours:     fmt.Sprintf("%d", settings.RegretDelayHours),
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingCurrency:             settings.Currency,
		constants.SettingStrictMode:           fmt.Sprintf("%v", settings.StrictMode),
		constants.SettingTheme:                settings.Theme,
		constants.SettingTimezone:             settings.Timezone,
	}
}

// DefaultSettings returns a fully populated Settings for a fresh store.
// Boolean defaults live here rather than in ApplyDefaultSettings, where a
// false value is indistinguishable from an unset one.
func DefaultSettings() Settings {
	settings := Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		StrictMode:           constants.DefaultStrictMode,
	}
	ApplyDefaultSettings(&settings)
	return settings
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.CooldownMinutes == 0 {
		settings.CooldownMinutes = constants.DefaultCooldownMinutes
	}
	if settings.RegretDelayHours == 0 {
		settings.RegretDelayHours = constants.DefaultRegretDelayHours
	}
	if settings.Currency == "" {
		settings.Currency = constants.DefaultCurrency
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
