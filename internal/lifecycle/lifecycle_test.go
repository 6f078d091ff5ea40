package lifecycle

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kmcrane/urge/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const testRegretDelay = 72 * time.Hour

func cooldownImpulse(id string, reviewAt time.Time) models.Impulse {
	return models.Impulse{
		ID:        id,
		Title:     "item " + id,
		Category:  models.CategoryShopping,
		Status:    models.StatusCooldown,
		CreatedAt: reviewAt.Add(-24 * time.Hour),
		ReviewAt:  reviewAt,
	}
}

func TestPromoteDue(t *testing.T) {
	impulses := []models.Impulse{
		cooldownImpulse("due-1", testNow.Add(-time.Hour)),
		cooldownImpulse("due-2", testNow), // exactly at now counts as due
		cooldownImpulse("future", testNow.Add(time.Hour)),
		{ID: "skipped", Status: models.StatusSkipped},
	}

	got := PromoteDue(impulses, testNow)

	wantStatus := map[string]models.Status{
		"due-1":   models.StatusDecision,
		"due-2":   models.StatusDecision,
		"future":  models.StatusCooldown,
		"skipped": models.StatusSkipped,
	}
	for _, imp := range got {
		if imp.Status != wantStatus[imp.ID] {
			t.Errorf("record %s: status = %s, want %s", imp.ID, imp.Status, wantStatus[imp.ID])
		}
	}

	// Input must be untouched
	if impulses[0].Status != models.StatusCooldown {
		t.Error("PromoteDue mutated its input")
	}
}

func TestPromoteDueIdempotent(t *testing.T) {
	impulses := []models.Impulse{
		cooldownImpulse("a", testNow.Add(-2*time.Hour)),
		cooldownImpulse("b", testNow.Add(2*time.Hour)),
	}

	once := PromoteDue(impulses, testNow)
	twice := PromoteDue(once, testNow)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("PromoteDue is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestPromoteDueEmpty(t *testing.T) {
	got := PromoteDue(nil, testNow)
	if len(got) != 0 {
		t.Errorf("PromoteDue(nil) returned %d records, want 0", len(got))
	}
}

func TestDuePromotions(t *testing.T) {
	impulses := []models.Impulse{
		cooldownImpulse("x", testNow.Add(-time.Minute)),
		cooldownImpulse("y", testNow.Add(time.Minute)),
		cooldownImpulse("z", testNow.Add(-time.Second)),
	}

	got := DuePromotions(impulses, testNow)
	want := []string{"x", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DuePromotions mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordDecisionSkip(t *testing.T) {
	imp := cooldownImpulse("s", testNow.Add(-time.Hour))
	imp.Status = models.StatusDecision

	got, err := RecordDecision(imp, DecisionSkip, models.SkippedRelieved, testRegretDelay, testNow)
	if err != nil {
		t.Fatalf("RecordDecision(skip) error: %v", err)
	}
	if got.Status != models.StatusSkipped {
		t.Errorf("status = %s, want skipped", got.Status)
	}
	if got.DecisionAt == nil || !got.DecisionAt.Equal(testNow) {
		t.Errorf("DecisionAt = %v, want %v", got.DecisionAt, testNow)
	}
	if got.RegretCheckAt != nil {
		t.Errorf("RegretCheckAt = %v, want nil for a skip", got.RegretCheckAt)
	}
	if got.SkippedFeeling != models.SkippedRelieved {
		t.Errorf("SkippedFeeling = %s, want relieved", got.SkippedFeeling)
	}
}

func TestRecordDecisionBuy(t *testing.T) {
	imp := cooldownImpulse("b", testNow.Add(-time.Hour))
	imp.Status = models.StatusDecision

	got, err := RecordDecision(imp, DecisionBuy, "", testRegretDelay, testNow)
	if err != nil {
		t.Fatalf("RecordDecision(buy) error: %v", err)
	}
	if got.Status != models.StatusBought {
		t.Errorf("status = %s, want bought", got.Status)
	}
	wantCheck := testNow.Add(testRegretDelay)
	if got.RegretCheckAt == nil || !got.RegretCheckAt.Equal(wantCheck) {
		t.Errorf("RegretCheckAt = %v, want %v", got.RegretCheckAt, wantCheck)
	}
}

func TestRecordDecisionLater(t *testing.T) {
	imp := cooldownImpulse("l", testNow.Add(-time.Hour))
	imp.Status = models.StatusDecision

	got, err := RecordDecision(imp, DecisionLater, "", testRegretDelay, testNow)
	if err != nil {
		t.Fatalf("RecordDecision(later) error: %v", err)
	}
	if got.Status != models.StatusSaved {
		t.Errorf("status = %s, want saved", got.Status)
	}
	if got.DecisionAt != nil {
		t.Errorf("DecisionAt = %v, want nil for save-later", got.DecisionAt)
	}
}

func TestRecordDecisionTerminal(t *testing.T) {
	for _, status := range []models.Status{models.StatusSkipped, models.StatusBought} {
		imp := cooldownImpulse("t", testNow)
		imp.Status = status

		got, err := RecordDecision(imp, DecisionSkip, "", testRegretDelay, testNow)
		if err == nil {
			t.Errorf("RecordDecision on %s record: want error, got none", status)
		}
		if diff := cmp.Diff(imp, got); diff != "" {
			t.Errorf("failed decision mutated the record (-orig +got):\n%s", diff)
		}
	}
}

func TestReopen(t *testing.T) {
	imp := cooldownImpulse("r", testNow)
	imp.Status = models.StatusSaved

	got, err := Reopen(imp)
	if err != nil {
		t.Fatalf("Reopen error: %v", err)
	}
	if got.Status != models.StatusDecision {
		t.Errorf("status = %s, want decision", got.Status)
	}

	if _, err := Reopen(got); err == nil {
		t.Error("Reopen on a non-saved record should error")
	}
}

func TestRecordRegret(t *testing.T) {
	due := testNow.Add(-time.Hour)
	notYet := testNow.Add(time.Hour)

	bought := func(checkAt *time.Time) models.Impulse {
		d := testNow.Add(-testRegretDelay)
		return models.Impulse{
			ID:            "rg",
			Title:         "gadget",
			Status:        models.StatusBought,
			CreatedAt:     d.Add(-24 * time.Hour),
			ReviewAt:      d,
			DecisionAt:    &d,
			RegretCheckAt: checkAt,
		}
	}

	t.Run("attaches feedback when due", func(t *testing.T) {
		got, err := RecordRegret(bought(&due), 4, models.FeelingRegret, "should have waited", testNow)
		if err != nil {
			t.Fatalf("RecordRegret error: %v", err)
		}
		if got.RegretRating != 4 || got.FinalFeeling != models.FeelingRegret {
			t.Errorf("feedback = (%d, %s), want (4, regret)", got.RegretRating, got.FinalFeeling)
		}
		if got.RegretCheckAt != nil {
			t.Error("RegretCheckAt should be cleared once feedback lands")
		}
	})

	t.Run("derives feeling from rating", func(t *testing.T) {
		got, err := RecordRegret(bought(&due), 2, "", "", testNow)
		if err != nil {
			t.Fatalf("RecordRegret error: %v", err)
		}
		if got.FinalFeeling != models.FeelingWorthIt {
			t.Errorf("FinalFeeling = %s, want worth_it for rating 2", got.FinalFeeling)
		}
	})

	t.Run("rejects before due", func(t *testing.T) {
		if _, err := RecordRegret(bought(&notYet), 3, "", "", testNow); err == nil {
			t.Error("want error when regret check is not yet due")
		}
	})

	t.Run("rejects double feedback", func(t *testing.T) {
		imp := bought(&due)
		imp.RegretRating = 5
		if _, err := RecordRegret(imp, 3, "", "", testNow); err == nil {
			t.Error("want error when feedback already recorded")
		}
	})

	t.Run("rejects non-bought records", func(t *testing.T) {
		imp := bought(&due)
		imp.Status = models.StatusSkipped
		if _, err := RecordRegret(imp, 3, "", "", testNow); err == nil {
			t.Error("want error for non-bought record")
		}
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		if _, err := RecordRegret(bought(&due), 6, "", "", testNow); err == nil {
			t.Error("want error for rating 6")
		}
	})
}

func TestNewImpulse(t *testing.T) {
	imp := NewImpulse("id-1", "coffee maker", models.CategoryShopping, 89.99, 24*time.Hour, testNow)

	if imp.Status != models.StatusCooldown {
		t.Errorf("status = %s, want cooldown", imp.Status)
	}
	if !imp.ReviewAt.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("ReviewAt = %v, want created + cooldown", imp.ReviewAt)
	}
	if err := imp.Validate(); err != nil {
		t.Errorf("new impulse should validate: %v", err)
	}
}
