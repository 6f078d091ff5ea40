package models

// Settings represents application-wide settings
type Settings struct {
	CooldownMinutes      int    `json:"cooldown_minutes"`       // mandatory delay between logging and deciding
	RegretDelayHours     int    `json:"regret_delay_hours"`     // delay between a buy and its regret check
	NotificationsEnabled bool   `json:"notifications_enabled"`  // whether notifications are enabled
	Currency             string `json:"currency"`               // ISO currency code used for display
	StrictMode           bool   `json:"strict_mode"`            // disallow deciding before the cool-down ends, no exceptions
	Theme                string `json:"theme"`                  // TUI color theme
	Timezone             string `json:"timezone"`               // IANA timezone name or "Local" for system timezone
}
