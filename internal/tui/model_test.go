package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "urge.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func seedImpulse(t *testing.T, store storage.Provider, imp models.Impulse) {
	t.Helper()
	if err := store.AddImpulse(imp); err != nil {
		t.Fatalf("add impulse: %v", err)
	}
}

func TestPendingHistorySplit(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	seedImpulse(t, store, models.Impulse{
		ID: "pending-1", Title: "headphones", Category: models.CategoryDigital,
		Status: models.StatusCooldown, CreatedAt: now, ReviewAt: now.Add(time.Hour),
	})
	decided := now.Add(-time.Hour)
	seedImpulse(t, store, models.Impulse{
		ID: "done-1", Title: "espresso machine", Category: models.CategoryShopping,
		Status: models.StatusSkipped, CreatedAt: now.Add(-2 * time.Hour),
		ReviewAt: now.Add(-time.Hour), DecisionAt: &decided,
	})
	seedImpulse(t, store, models.Impulse{
		ID: "saved-1", Title: "desk lamp", Category: models.CategoryShopping,
		Status: models.StatusSaved, CreatedAt: now.Add(-3 * time.Hour), ReviewAt: now.Add(-2 * time.Hour),
	})

	m := NewModel(store)

	if got := len(m.pendingItems()); got != 2 {
		t.Errorf("pendingItems() = %d items, want 2 (cooldown + saved)", got)
	}
	if got := len(m.historyItems()); got != 1 {
		t.Errorf("historyItems() = %d items, want 1", got)
	}
}

func TestTickPromotesDueRecords(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	seedImpulse(t, store, models.Impulse{
		ID: "due-1", Title: "keyboard", Category: models.CategoryDigital,
		Status: models.StatusCooldown, CreatedAt: now.Add(-time.Hour), ReviewAt: now.Add(-time.Minute),
	})

	m := NewModel(store)
	updated, _ := m.Update(tickMsg(now))
	m = updated.(Model)

	imp, err := store.GetImpulse("due-1")
	if err != nil {
		t.Fatalf("get impulse: %v", err)
	}
	if imp.Status != models.StatusDecision {
		t.Errorf("status after tick = %s, want %s", imp.Status, models.StatusDecision)
	}
	if m.impulses[0].Status != models.StatusDecision {
		t.Errorf("in-memory status = %s, want %s", m.impulses[0].Status, models.StatusDecision)
	}
}

func TestTabCycling(t *testing.T) {
	store := newTestStore(t)
	m := NewModel(store)

	if m.state != constants.StatePending {
		t.Fatalf("initial state = %v, want StatePending", m.state)
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	for i, want := range []constants.SessionState{
		constants.StateHistory, constants.StateStats, constants.StateGoals,
		constants.StateSettings, constants.StatePending,
	} {
		updated, _ := m.Update(tab)
		m = updated.(Model)
		if m.state != want {
			t.Errorf("after %d tabs: state = %v, want %v", i+1, m.state, want)
		}
	}
}

func TestQuickDecideSkip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	seedImpulse(t, store, models.Impulse{
		ID: "ready-1", Title: "sneakers", Category: models.CategoryShopping, Price: 120,
		Status: models.StatusDecision, CreatedAt: now.Add(-2 * time.Hour), ReviewAt: now.Add(-time.Hour),
	})

	m := NewModel(store)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(Model)

	imp, err := store.GetImpulse("ready-1")
	if err != nil {
		t.Fatalf("get impulse: %v", err)
	}
	if imp.Status != models.StatusSkipped {
		t.Errorf("status = %s, want %s", imp.Status, models.StatusSkipped)
	}
	if imp.SkippedFeeling != models.SkippedNeutral {
		t.Errorf("skipped feeling = %s, want %s", imp.SkippedFeeling, models.SkippedNeutral)
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error message: %s", m.errMsg)
	}
}

func TestStrictModeBlocksEarlyQuickDecide(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	settings.StrictMode = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	seedImpulse(t, store, models.Impulse{
		ID: "early-1", Title: "tablet", Category: models.CategoryDigital,
		Status: models.StatusCooldown, CreatedAt: now, ReviewAt: now.Add(time.Hour),
	})

	m := NewModel(store)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = updated.(Model)

	imp, err := store.GetImpulse("early-1")
	if err != nil {
		t.Fatalf("get impulse: %v", err)
	}
	if imp.Status != models.StatusCooldown {
		t.Errorf("status = %s, want unchanged %s", imp.Status, models.StatusCooldown)
	}
	if m.errMsg == "" {
		t.Error("expected a strict-mode error message")
	}
}

func TestConfirmDeleteFlow(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	seedImpulse(t, store, models.Impulse{
		ID: "del-1", Title: "monitor arm", Category: models.CategoryOther,
		Status: models.StatusCooldown, CreatedAt: now, ReviewAt: now.Add(time.Hour),
	})

	m := NewModel(store)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	if m.state != constants.StateConfirmDelete {
		t.Fatalf("state = %v, want StateConfirmDelete", m.state)
	}

	// Declining keeps the record
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	if len(m.pendingItems()) != 1 {
		t.Fatal("record deleted after declining confirmation")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = updated.(Model)
	if len(m.pendingItems()) != 0 {
		t.Error("record not deleted after confirming")
	}
}

func TestViewRendersCountdown(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	seedImpulse(t, store, models.Impulse{
		ID: "cd-1", Title: "camera", Category: models.CategoryHobby,
		Status: models.StatusCooldown, CreatedAt: now, ReviewAt: now.Add(45 * time.Minute),
	})

	m := NewModel(store)
	m.now = now
	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	if want := "cooling down"; !strings.Contains(view, want) {
		t.Errorf("view missing %q", want)
	}
}
