package validation

import (
	"testing"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

func baseImpulse(id, title string) models.Impulse {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Impulse{
		ID:        id,
		Title:     title,
		Category:  models.CategoryShopping,
		Status:    models.StatusCooldown,
		CreatedAt: created,
		ReviewAt:  created.Add(24 * time.Hour),
	}
}

func conflictTypes(result ValidationResult) map[ConflictType]int {
	counts := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		counts[c.Type]++
	}
	return counts
}

func TestValidateImpulsesClean(t *testing.T) {
	v := New()
	impulses := []models.Impulse{
		baseImpulse("a", "headphones"),
		baseImpulse("b", "keyboard"),
	}

	result := v.ValidateImpulses(impulses)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateImpulsesEmpty(t *testing.T) {
	v := New()
	result := v.ValidateImpulses(nil)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts for empty input, got %d", len(result.Conflicts))
	}
	if got := result.FormatReport(); got != "No problems detected." {
		t.Errorf("unexpected report: %q", got)
	}
}

func TestValidateImpulsesDetectsProblems(t *testing.T) {
	v := New()

	noID := baseImpulse("", "no id")

	dupA := baseImpulse("dup", "first")
	dupB := baseImpulse("dup", "second")

	badTimes := baseImpulse("t", "time travel")
	badTimes.ReviewAt = badTimes.CreatedAt.Add(-time.Hour)

	terminalNoDecision := baseImpulse("d", "skipped without decision")
	terminalNoDecision.Status = models.StatusSkipped

	orphanCheck := baseImpulse("o", "never bought")
	checkAt := orphanCheck.CreatedAt.Add(72 * time.Hour)
	orphanCheck.RegretCheckAt = &checkAt

	badRating := baseImpulse("r", "overrated")
	badRating.Status = models.StatusBought
	decidedAt := badRating.ReviewAt
	badRating.DecisionAt = &decidedAt
	badRating.RegretRating = 9

	result := v.ValidateImpulses([]models.Impulse{
		noID, dupA, dupB, badTimes, terminalNoDecision, orphanCheck, badRating,
	})

	counts := conflictTypes(result)
	want := map[ConflictType]int{
		ConflictMissingID:           1,
		ConflictDuplicateID:         1,
		ConflictInvalidTimestamps:   1,
		ConflictMissingDecision:     1,
		ConflictOrphanRegretCheck:   1,
		ConflictInvalidRegretRating: 1,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("expected %d %s conflicts, got %d", n, typ, counts[typ])
		}
	}
}

func TestValidateImpulsesDuplicateActiveTitles(t *testing.T) {
	v := New()

	a := baseImpulse("a", "espresso machine")
	b := baseImpulse("b", "espresso machine")

	// A terminal record with the same title is fine
	c := baseImpulse("c", "espresso machine")
	c.Status = models.StatusSkipped
	decidedAt := c.ReviewAt
	c.DecisionAt = &decidedAt

	result := v.ValidateImpulses([]models.Impulse{a, b, c})
	counts := conflictTypes(result)
	if counts[ConflictDuplicateActive] != 1 {
		t.Fatalf("expected 1 duplicate-active conflict, got %d", counts[ConflictDuplicateActive])
	}

	var conflict Conflict
	for _, cf := range result.Conflicts {
		if cf.Type == ConflictDuplicateActive {
			conflict = cf
		}
	}
	if len(conflict.IDs) != 2 {
		t.Errorf("expected 2 IDs in duplicate-active conflict, got %v", conflict.IDs)
	}
}

func TestValidateGoals(t *testing.T) {
	v := New()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	goals := []models.SavingsGoal{
		{ID: "g1", Name: "vacation", Target: 500, CreatedAt: now},
		{ID: "g2", Name: "vacation", Target: 800, CreatedAt: now},
		{ID: "g3", Name: "nothing", Target: 0, CreatedAt: now},
		{ID: "", Name: "anonymous", Target: 100, CreatedAt: now},
	}

	result := v.ValidateGoals(goals)
	counts := conflictTypes(result)
	if counts[ConflictInvalidGoal] != 2 {
		t.Errorf("expected 2 invalid-goal conflicts (duplicate name, zero target), got %d", counts[ConflictInvalidGoal])
	}
	if counts[ConflictMissingID] != 1 {
		t.Errorf("expected 1 missing-id conflict, got %d", counts[ConflictMissingID])
	}
}

func TestValidateSettings(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		settings models.Settings
		want     int
	}{
		{
			name: "valid",
			settings: models.Settings{
				CooldownMinutes: 1440, RegretDelayHours: 72, Timezone: "Local",
			},
			want: 0,
		},
		{
			name: "zero cooldown",
			settings: models.Settings{
				CooldownMinutes: 0, RegretDelayHours: 72, Timezone: "Local",
			},
			want: 1,
		},
		{
			name: "bad timezone and negative delay",
			settings: models.Settings{
				CooldownMinutes: 1440, RegretDelayHours: -1, Timezone: "Mars/Olympus",
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateSettings(tt.settings)
			if len(result.Conflicts) != tt.want {
				t.Errorf("expected %d conflicts, got %d: %s", tt.want, len(result.Conflicts), result.FormatReport())
			}
		})
	}
}

func TestValidateAllMerges(t *testing.T) {
	v := New()

	bad := baseImpulse("x", "bad times")
	bad.ReviewAt = bad.CreatedAt.Add(-time.Minute)

	settings := models.Settings{CooldownMinutes: 0, RegretDelayHours: 72, Timezone: "Local"}

	result := v.ValidateAll([]models.Impulse{bad}, nil, settings)
	if len(result.Conflicts) != 2 {
		t.Errorf("expected 2 merged conflicts, got %d: %s", len(result.Conflicts), result.FormatReport())
	}
}
