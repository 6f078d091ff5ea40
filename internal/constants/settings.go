package constants

const (
	// Setting keys
	SettingCooldownMinutes      = "cooldown_minutes"
	SettingRegretDelayHours     = "regret_delay_hours"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingCurrency             = "currency"
	SettingStrictMode           = "strict_mode"
	SettingTheme                = "theme"
	SettingTimezone             = "timezone"

	// Default Settings Values
	DefaultCooldownMinutes      = 24 * 60
	DefaultRegretDelayHours     = 72
	DefaultNotificationsEnabled = true
	DefaultCurrency             = "USD"
	DefaultStrictMode           = false
	DefaultTheme                = "dark"
	DefaultTimezone             = "Local" // Use system local timezone by default
)
