// Package validation checks stored data for inconsistencies that the normal
// command flow should never produce, such as impulses whose review time
// precedes their creation time. It backs the doctor command.
package validation

import (
	"fmt"
	"sort"

	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingID           ConflictType = "missing_id"
	ConflictDuplicateID         ConflictType = "duplicate_id"
	ConflictDuplicateActive     ConflictType = "duplicate_active_impulse"
	ConflictInvalidTimestamps   ConflictType = "invalid_timestamps"
	ConflictMissingDecision     ConflictType = "missing_decision_timestamp"
	ConflictOrphanRegretCheck   ConflictType = "orphan_regret_check"
	ConflictInvalidRegretRating ConflictType = "invalid_regret_rating"
	ConflictInvalidGoal         ConflictType = "invalid_goal"
	ConflictInvalidSettings     ConflictType = "invalid_settings"
)

// Conflict represents a detected inconsistency in stored data
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Titles or names involved
	IDs         []string // IDs of records involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates stored impulses, goals and settings
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateImpulses checks impulse records for structural problems.
func (v *Validator) ValidateImpulses(impulses []models.Impulse) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]bool)
	activeTitles := make(map[string][]string)

	for _, imp := range impulses {
		if imp.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Impulse %q has no ID", imp.Title),
				Items:       []string{imp.Title},
			})
			continue
		}
		if seen[imp.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate impulse ID: %s", imp.ID),
				IDs:         []string{imp.ID},
			})
		}
		seen[imp.ID] = true

		if !imp.IsTerminal() && imp.Title != "" {
			activeTitles[imp.Title] = append(activeTitles[imp.Title], imp.ID)
		}

		if imp.ReviewAt.Before(imp.CreatedAt) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictInvalidTimestamps,
				Description: fmt.Sprintf("Impulse %q has review time %s before creation time %s",
					imp.Title, imp.ReviewAt.Format("2006-01-02 15:04"), imp.CreatedAt.Format("2006-01-02 15:04")),
				Items: []string{imp.Title},
				IDs:   []string{imp.ID},
			})
		}

		if imp.IsTerminal() && imp.DecisionAt == nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingDecision,
				Description: fmt.Sprintf("Impulse %q is %s but has no decision timestamp", imp.Title, imp.Status),
				Items:       []string{imp.Title},
				IDs:         []string{imp.ID},
			})
		}

		if imp.RegretCheckAt != nil && imp.Status != models.StatusBought {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanRegretCheck,
				Description: fmt.Sprintf("Impulse %q has a regret check scheduled but was never bought", imp.Title),
				Items:       []string{imp.Title},
				IDs:         []string{imp.ID},
			})
		}

		if imp.RegretRating != 0 && (imp.RegretRating < 1 || imp.RegretRating > 5) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRegretRating,
				Description: fmt.Sprintf("Impulse %q has regret rating %d outside 1-5", imp.Title, imp.RegretRating),
				Items:       []string{imp.Title},
				IDs:         []string{imp.ID},
			})
		}
	}

	// Several live cooldowns for the same item usually means a double log
	titles := make([]string, 0, len(activeTitles))
	for title := range activeTitles {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		ids := activeTitles[title]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateActive,
				Description: fmt.Sprintf("Multiple active impulses titled %q (IDs: %v)", title, ids),
				Items:       []string{title},
				IDs:         ids,
			})
		}
	}

	return result
}

// ValidateGoals checks savings goals for structural problems.
func (v *Validator) ValidateGoals(goals []models.SavingsGoal) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	names := make(map[string][]string)
	for _, goal := range goals {
		if goal.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Description: fmt.Sprintf("Goal %q has no ID", goal.Name),
				Items:       []string{goal.Name},
			})
		}
		if goal.Target <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidGoal,
				Description: fmt.Sprintf("Goal %q has non-positive target %.2f", goal.Name, goal.Target),
				Items:       []string{goal.Name},
				IDs:         []string{goal.ID},
			})
		}
		if goal.Name != "" {
			names[goal.Name] = append(names[goal.Name], goal.ID)
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		ids := names[name]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidGoal,
				Description: fmt.Sprintf("Duplicate goal name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
				IDs:         ids,
			})
		}
	}

	return result
}

// ValidateSettings checks settings values for out-of-range entries.
func (v *Validator) ValidateSettings(settings models.Settings) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if settings.CooldownMinutes <= 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: fmt.Sprintf("Cooldown minutes must be positive, got %d", settings.CooldownMinutes),
		})
	}
	if settings.RegretDelayHours <= 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: fmt.Sprintf("Regret delay hours must be positive, got %d", settings.RegretDelayHours),
		})
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: fmt.Sprintf("Invalid timezone: %q", settings.Timezone),
		})
	}

	return result
}

// ValidateAll runs every check and merges the results.
func (v *Validator) ValidateAll(impulses []models.Impulse, goals []models.SavingsGoal, settings models.Settings) ValidationResult {
	result := v.ValidateImpulses(impulses)
	result.Conflicts = append(result.Conflicts, v.ValidateGoals(goals).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateSettings(settings).Conflicts...)
	return result
}
