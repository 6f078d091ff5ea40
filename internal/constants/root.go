package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// NotificationType identifies the kind of notification being delivered
type NotificationType string

const (
	AppName           = "urge"
	DefaultConfigPath = "~/.config/urge/urge.db"
	Version           = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "urge-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "urge-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.kmcrane.urge"

	// DefaultWatchInterval is how often the watch loop re-checks timestamps
	DefaultWatchInterval = 30 * time.Second

	// Notification types. The watch loop sends cooldown-done and
	// regret-check; the remaining types are the payload vocabulary shared
	// with the tray companion, which originates them itself.
	NotifyCooldownDone NotificationType = "cooldown-done"
	NotifyReminder     NotificationType = "reminder"
	NotifyStreak       NotificationType = "streak"
	NotifyRegretCheck  NotificationType = "regret-check"
	NotifyContextual   NotificationType = "contextual"
	NotifyWeeklyReport NotificationType = "weekly-report"
)

// Session States
const (
	StatePending SessionState = iota
	StateHistory
	StateStats
	StateGoals
	StateSettings
	StateLogging
	StateDeciding
	StateRegret
	StateEditSettings
	StateAddGoal
	StateConfirmDelete
	StateConfirmClear
)

const (
	// RegretThreshold is the minimum 1-5 rating that counts a purchase as
	// regretted. The same cutoff applies when converting 0-100 scores
	// (>50 maps to >=3).
	RegretThreshold = 3

	// ReportRecentRows caps the recent-activity table in the HTML report
	ReportRecentRows = 20

	// PersonaMinRecords is the minimum sample size before persona
	// classification returns anything other than unknown
	PersonaMinRecords = 5

	// PatternMinOccurrences is the minimum group size for a recurring pattern
	PatternMinOccurrences = 3
)
