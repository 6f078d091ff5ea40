package models

import (
	"testing"

	"github.com/kmcrane/urge/internal/constants"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.CooldownMinutes != constants.DefaultCooldownMinutes {
		t.Errorf("CooldownMinutes = %d, want %d", settings.CooldownMinutes, constants.DefaultCooldownMinutes)
	}
	if settings.RegretDelayHours != constants.DefaultRegretDelayHours {
		t.Errorf("RegretDelayHours = %d, want %d", settings.RegretDelayHours, constants.DefaultRegretDelayHours)
	}
	if !settings.NotificationsEnabled {
		t.Error("NotificationsEnabled = false, want true")
	}
	if settings.Currency != constants.DefaultCurrency {
		t.Errorf("Currency = %q, want %q", settings.Currency, constants.DefaultCurrency)
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
}

func TestApplyDefaultSettingsKeepsExplicitValues(t *testing.T) {
	settings := Settings{CooldownMinutes: 90, Currency: "EUR"}
	ApplyDefaultSettings(&settings)

	if settings.CooldownMinutes != 90 {
		t.Errorf("CooldownMinutes = %d, want 90", settings.CooldownMinutes)
	}
	if settings.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", settings.Currency)
	}
	if settings.Theme != constants.DefaultTheme {
		t.Errorf("Theme = %q, want %q", settings.Theme, constants.DefaultTheme)
	}
}
