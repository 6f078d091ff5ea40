package utils

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// HumanDuration renders a duration as a compact countdown string, e.g.
// "2d 3h", "3h 12m", "45m", "ready". Negative durations mean the deadline
// has passed.
func HumanDuration(d time.Duration) string {
	if d <= 0 {
		return "ready"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return "<1m"
	}
}

// RelativeTime renders how long ago a past timestamp was, e.g. "3h ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in " + HumanDuration(-d)
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours())/24)
	}
}

// FormatMoney renders an amount with a currency code, e.g. "USD 42.50".
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}
