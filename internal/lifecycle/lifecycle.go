// Package lifecycle holds the pure transition functions that move an impulse
// between its states. Dueness is always decided by comparing stored
// timestamps to the caller-supplied clock, never by counting elapsed ticks,
// so a missed poll self-corrects on the next check. Callers persist results.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

// Decision is the user's verdict on a reviewable impulse.
type Decision string

const (
	DecisionSkip  Decision = "skip"
	DecisionBuy   Decision = "buy"
	DecisionLater Decision = "later"
)

// PromoteDue returns a copy of the collection where every cooldown record
// whose review time has passed is promoted to decision. The whole collection
// is processed in one pass so multiple records becoming due in the same tick
// are never missed. Calling it twice with the same now yields the same
// output as calling it once.
func PromoteDue(impulses []models.Impulse, now time.Time) []models.Impulse {
	out := make([]models.Impulse, len(impulses))
	for idx, imp := range impulses {
		if imp.IsDecisionDue(now) {
			imp.Status = models.StatusDecision
		}
		out[idx] = imp
	}
	return out
}

// DuePromotions returns the IDs of records that PromoteDue would change,
// in collection order. Used by the watch loop to notify per record.
func DuePromotions(impulses []models.Impulse, now time.Time) []string {
	var ids []string
	for _, imp := range impulses {
		if imp.IsDecisionDue(now) {
			ids = append(ids, imp.ID)
		}
	}
	return ids
}

// RecordDecision applies a skip/buy/later verdict to a single record and
// returns the updated copy. The input is never mutated. Re-deciding a
// terminal record is an error.
func RecordDecision(imp models.Impulse, decision Decision, feeling models.SkippedFeeling, regretDelay time.Duration, now time.Time) (models.Impulse, error) {
	if imp.IsTerminal() {
		return imp, fmt.Errorf("impulse %s already decided (%s)", imp.ID, imp.Status)
	}

	switch decision {
	case DecisionSkip:
		imp.Status = models.StatusSkipped
		t := now
		imp.DecisionAt = &t
		imp.RegretCheckAt = nil
		if feeling != "" {
			imp.SkippedFeeling = feeling
		} else {
			imp.SkippedFeeling = models.SkippedNeutral
		}
	case DecisionBuy:
		imp.Status = models.StatusBought
		t := now
		imp.DecisionAt = &t
		check := now.Add(regretDelay)
		imp.RegretCheckAt = &check
	case DecisionLater:
		// Saved records keep no decision timestamp; they can be reopened.
		imp.Status = models.StatusSaved
		imp.DecisionAt = nil
		imp.RegretCheckAt = nil
	default:
		return imp, fmt.Errorf("unknown decision: %s", decision)
	}

	return imp, nil
}

// Reopen moves a saved record back to decision so it can be acted on.
func Reopen(imp models.Impulse) (models.Impulse, error) {
	if imp.Status != models.StatusSaved {
		return imp, fmt.Errorf("impulse %s is not saved for later (%s)", imp.ID, imp.Status)
	}
	imp.Status = models.StatusDecision
	return imp, nil
}

// RecordRegret attaches regret feedback to a bought record once its check is
// due, and marks the check resolved by clearing RegretCheckAt. It errors
// without mutating when the record was not bought, the check is not yet due,
// or feedback was already given.
func RecordRegret(imp models.Impulse, rating int, feeling models.FinalFeeling, notes string, now time.Time) (models.Impulse, error) {
	if imp.Status != models.StatusBought {
		return imp, fmt.Errorf("impulse %s was not bought (%s)", imp.ID, imp.Status)
	}
	if imp.HasRegretFeedback() {
		return imp, fmt.Errorf("regret feedback already recorded for impulse %s", imp.ID)
	}
	if imp.RegretCheckAt == nil {
		return imp, fmt.Errorf("no regret check pending for impulse %s", imp.ID)
	}
	if imp.RegretCheckAt.After(now) {
		return imp, fmt.Errorf("regret check for impulse %s is not due until %s", imp.ID, imp.RegretCheckAt.Format(time.RFC3339))
	}
	if rating < 1 || rating > 5 {
		return imp, fmt.Errorf("regret rating must be between 1 and 5, got %d", rating)
	}

	imp.RegretRating = rating
	if feeling != "" {
		imp.FinalFeeling = feeling
	} else if rating >= 3 {
		imp.FinalFeeling = models.FeelingRegret
	} else {
		imp.FinalFeeling = models.FeelingWorthIt
	}
	imp.RegretNotes = notes
	imp.RegretCheckAt = nil

	return imp, nil
}

// NewImpulse builds a fresh cooldown record from logging input. The review
// time is derived from the configured cool-down at creation and fixed from
// then on.
func NewImpulse(id, title string, category models.Category, price float64, cooldown time.Duration, now time.Time) models.Impulse {
	return models.Impulse{
		ID:        id,
		Title:     title,
		Category:  category,
		Price:     price,
		Emotion:   models.EmotionNone,
		Urgency:   models.UrgencyImpulse,
		Status:    models.StatusCooldown,
		CreatedAt: now,
		ReviewAt:  now.Add(cooldown),
	}
}
