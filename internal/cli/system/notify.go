package system

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/notifier"
)

// NotifyCmd performs one notification sweep. It is what a cron entry or the
// tray app calls; `urge watch` does the same check on a loop.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	now := time.Now()
	dueIDs := lifecycle.DuePromotions(impulses, now)
	promoted := lifecycle.PromoteDue(impulses, now)
	if len(dueIDs) > 0 {
		if err := ctx.Store.SaveAllImpulses(promoted); err != nil {
			return fmt.Errorf("failed to persist promotions: %w", err)
		}
	}

	n := notifier.New()
	sent := 0

	byID := make(map[string]int, len(promoted))
	for i, imp := range promoted {
		byID[imp.ID] = i
	}

	for _, id := range dueIDs {
		imp := promoted[byID[id]]
		msg := fmt.Sprintf("Cool-down finished: %q is ready for a decision", imp.Title)
		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(constants.NotifyCooldownDone, msg, imp.ID); err != nil {
			fmt.Printf("Failed to send notification: %v\n", err)
			continue
		}
		sent++
	}

	for _, imp := range promoted {
		if !imp.IsRegretCheckDue(now) || imp.HasRegretFeedback() {
			continue
		}
		msg := fmt.Sprintf("How do you feel about buying %q?", imp.Title)
		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(constants.NotifyRegretCheck, msg, imp.ID); err != nil {
			fmt.Printf("Failed to send notification: %v\n", err)
			continue
		}
		sent++
	}

	if c.DryRun && len(dueIDs) == 0 {
		fmt.Println("Nothing due.")
	}
	if sent > 0 {
		fmt.Printf("Sent %d notification(s).\n", sent)
	}
	return nil
}
