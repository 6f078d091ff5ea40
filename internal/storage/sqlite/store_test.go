package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kmcrane/urge/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "urge.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

// Stored timestamps are RFC3339 with second precision, so fixtures use whole
// seconds in UTC for exact round-trips.
func testImpulse(id string) models.Impulse {
	created := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	return models.Impulse{
		ID:        id,
		Title:     "mechanical keyboard",
		Category:  models.CategoryDigital,
		Price:     149.99,
		Emotion:   models.EmotionExcited,
		Urgency:   models.UrgencyNiceToHave,
		Status:    models.StatusCooldown,
		CreatedAt: created,
		ReviewAt:  created.Add(24 * time.Hour),
	}
}

func TestImpulseRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := testImpulse("imp-1")
	want.UrgeStrength = 7
	want.Notes = "saw it on a stream"
	want.SourceApp = "amazon"

	if err := store.AddImpulse(want); err != nil {
		t.Fatalf("add impulse: %v", err)
	}

	got, err := store.GetImpulse("imp-1")
	if err != nil {
		t.Fatalf("get impulse: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("impulse round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImpulseUpdatePersistsDecision(t *testing.T) {
	store := setupTestStore(t)

	imp := testImpulse("imp-2")
	if err := store.AddImpulse(imp); err != nil {
		t.Fatalf("add impulse: %v", err)
	}

	decided := imp.ReviewAt.Add(time.Hour)
	check := decided.Add(72 * time.Hour)
	imp.Status = models.StatusBought
	imp.DecisionAt = &decided
	imp.RegretCheckAt = &check

	if err := store.UpdateImpulse(imp); err != nil {
		t.Fatalf("update impulse: %v", err)
	}

	got, err := store.GetImpulse("imp-2")
	if err != nil {
		t.Fatalf("get impulse: %v", err)
	}
	if got.Status != models.StatusBought {
		t.Errorf("status = %s, want %s", got.Status, models.StatusBought)
	}
	if got.DecisionAt == nil || !got.DecisionAt.Equal(decided) {
		t.Errorf("decision_at = %v, want %v", got.DecisionAt, decided)
	}
	if got.RegretCheckAt == nil || !got.RegretCheckAt.Equal(check) {
		t.Errorf("regret_check_at = %v, want %v", got.RegretCheckAt, check)
	}
}

func TestGetImpulseNotFound(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.GetImpulse("missing"); err == nil {
		t.Error("expected error for missing impulse, got nil")
	}
}

func TestSaveAllImpulsesReplacesCollection(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddImpulse(testImpulse("old-1")); err != nil {
		t.Fatalf("add impulse: %v", err)
	}

	replacement := []models.Impulse{testImpulse("new-1"), testImpulse("new-2")}
	if err := store.SaveAllImpulses(replacement); err != nil {
		t.Fatalf("save all: %v", err)
	}

	all, err := store.GetAllImpulses()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d impulses, want 2", len(all))
	}
	if _, err := store.GetImpulse("old-1"); err == nil {
		t.Error("old-1 should have been replaced")
	}
}

func TestDeleteAndClearImpulses(t *testing.T) {
	store := setupTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.AddImpulse(testImpulse(id)); err != nil {
			t.Fatalf("add impulse %s: %v", id, err)
		}
	}

	if err := store.DeleteImpulse("b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteImpulse("b"); err == nil {
		t.Error("expected error deleting missing impulse")
	}

	if err := store.ClearImpulses(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := store.GetAllImpulses()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("got %d impulses after clear, want 0", len(all))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Init seeds defaults
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get default settings: %v", err)
	}
	if settings.CooldownMinutes <= 0 {
		t.Fatalf("default cooldown = %d, want positive", settings.CooldownMinutes)
	}
	if !settings.NotificationsEnabled {
		t.Fatal("default notifications_enabled = false, want true")
	}

	settings.CooldownMinutes = 90
	settings.Currency = "EUR"
	settings.StrictMode = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if diff := cmp.Diff(settings, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestGoalRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := models.SavingsGoal{
		ID:          "goal-1",
		Name:        "new bike",
		Target:      500,
		Description: "commuter bike fund",
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.AddGoal(want); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	goals, err := store.GetAllGoals()
	if err != nil {
		t.Fatalf("get goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	if diff := cmp.Diff(want, goals[0]); diff != "" {
		t.Errorf("goal mismatch (-want +got):\n%s", diff)
	}

	achieved := want.CreatedAt.Add(30 * 24 * time.Hour)
	want.AchievedAt = &achieved
	if err := store.UpdateGoal(want); err != nil {
		t.Fatalf("update goal: %v", err)
	}
	goals, err = store.GetAllGoals()
	if err != nil {
		t.Fatalf("get goals: %v", err)
	}
	if goals[0].AchievedAt == nil || !goals[0].AchievedAt.Equal(achieved) {
		t.Errorf("achieved_at = %v, want %v", goals[0].AchievedAt, achieved)
	}

	if err := store.DeleteGoal("goal-1"); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if err := store.DeleteGoal("goal-1"); err == nil {
		t.Error("expected error deleting missing goal")
	}
}

func TestLoadFailsBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized store")
	}
}
