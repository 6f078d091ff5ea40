package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/kmcrane/urge/internal/backup"
	"github.com/kmcrane/urge/internal/logger"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/storage"
	"github.com/kmcrane/urge/internal/utils"
)

// Context carries shared dependencies into every command's Run method.
type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Location resolves the configured timezone, falling back to local time on
// any settings error.
func (c *Context) Location() *time.Location {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Local
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ResolveImpulse finds a single impulse by exact ID, unique ID prefix, or
// unique case-insensitive title match, in that order.
func (c *Context) ResolveImpulse(ref string) (models.Impulse, error) {
	impulses, err := c.Store.GetAllImpulses()
	if err != nil {
		return models.Impulse{}, fmt.Errorf("failed to load impulses: %w", err)
	}

	for _, imp := range impulses {
		if imp.ID == ref {
			return imp, nil
		}
	}

	var matches []models.Impulse
	for _, imp := range impulses {
		if strings.HasPrefix(imp.ID, ref) {
			matches = append(matches, imp)
		}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(ref)
		for _, imp := range impulses {
			if strings.ToLower(imp.Title) == lower {
				matches = append(matches, imp)
			}
		}
	}

	switch len(matches) {
	case 0:
		return models.Impulse{}, fmt.Errorf("no impulse matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, imp := range matches {
			ids[i] = ShortID(imp.ID)
		}
		return models.Impulse{}, fmt.Errorf("%q is ambiguous, matches: %s", ref, strings.Join(ids, ", "))
	}
}

// ShortID truncates a uuid for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatStatus renders a status with countdown context where it helps.
func FormatStatus(imp models.Impulse, now time.Time) string {
	switch imp.Status {
	case models.StatusCooldown:
		return fmt.Sprintf("cooldown (%s)", utils.HumanDuration(imp.CooldownRemaining(now)))
	case models.StatusDecision:
		return "ready to decide"
	case models.StatusBought:
		if imp.IsRegretCheckDue(now) && !imp.HasRegretFeedback() {
			return "bought (regret check due)"
		}
		return "bought"
	default:
		return string(imp.Status)
	}
}
