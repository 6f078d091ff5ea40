// Package watch runs the foreground poll loop behind `urge watch`. Each tick
// re-reads stored timestamps and compares them to the wall clock, so dueness
// self-corrects after laptop suspend or clock changes.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/logger"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/storage"
)

// Notifier is the delivery seam, satisfied by notifier.Notifier.
type Notifier interface {
	Notify(kind constants.NotificationType, text, impulseID string) error
}

// Watcher polls the store and fires notifications for due records.
type Watcher struct {
	store    storage.Provider
	notifier Notifier
	interval time.Duration

	// notified remembers which records already fired this process, the store
	// itself has no delivered-notification state
	notified map[string]bool
}

func New(store storage.Provider, n Notifier, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = constants.DefaultWatchInterval
	}
	return &Watcher{
		store:    store,
		notifier: n,
		interval: interval,
		notified: make(map[string]bool),
	}
}

// Run ticks until the context is cancelled. The first check happens
// immediately, not one interval in.
func (w *Watcher) Run(ctx context.Context) error {
	logger.Info("watch loop started", "interval", w.interval)

	if err := w.Tick(time.Now()); err != nil {
		logger.Error("watch tick failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			if err := w.Tick(now); err != nil {
				logger.Error("watch tick failed", "error", err)
			}
		}
	}
}

// Tick performs one poll: promote due cool-downs, persist the promotions and
// fire notifications for anything newly due.
func (w *Watcher) Tick(now time.Time) error {
	settings, err := w.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	impulses, err := w.store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	promotedIDs := lifecycle.DuePromotions(impulses, now)
	promoted := lifecycle.PromoteDue(impulses, now)

	if len(promotedIDs) > 0 {
		if err := w.store.SaveAllImpulses(promoted); err != nil {
			return fmt.Errorf("failed to persist promotions: %w", err)
		}
		logger.Info("promoted due cool-downs", "count", len(promotedIDs))
	}

	if !settings.NotificationsEnabled {
		return nil
	}

	byID := make(map[string]models.Impulse, len(promoted))
	for _, imp := range promoted {
		byID[imp.ID] = imp
	}

	for _, id := range promotedIDs {
		key := "cooldown:" + id
		if w.notified[key] {
			continue
		}
		imp := byID[id]
		text := fmt.Sprintf("Cool-down finished: %q is ready for a decision", imp.Title)
		w.send(constants.NotifyCooldownDone, text, id, key)
	}

	for _, imp := range promoted {
		if !imp.IsRegretCheckDue(now) || imp.HasRegretFeedback() {
			continue
		}
		key := "regret:" + imp.ID
		if w.notified[key] {
			continue
		}
		text := fmt.Sprintf("How do you feel about buying %q?", imp.Title)
		w.send(constants.NotifyRegretCheck, text, imp.ID, key)
	}

	return nil
}

// send delivers one notification, tolerating delivery failure. The tray app
// may simply not be running.
func (w *Watcher) send(kind constants.NotificationType, text, impulseID, key string) {
	if err := w.notifier.Notify(kind, text, impulseID); err != nil {
		logger.Warn("notification delivery failed", "type", kind, "error", err)
		return
	}
	w.notified[key] = true
}
