package models

import (
	"testing"
	"time"
)

func TestImpulseValidate(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	review := base.Add(24 * time.Hour)

	tests := []struct {
		name    string
		impulse Impulse
		wantErr bool
	}{
		{
			name: "valid minimal impulse",
			impulse: Impulse{
				ID:        "a",
				Title:     "headphones",
				Category:  CategoryDigital,
				Status:    StatusCooldown,
				CreatedAt: base,
				ReviewAt:  review,
			},
			wantErr: false,
		},
		{
			name: "empty title",
			impulse: Impulse{
				ID:        "b",
				Category:  CategoryFood,
				Status:    StatusCooldown,
				CreatedAt: base,
				ReviewAt:  review,
			},
			wantErr: true,
		},
		{
			name: "negative price",
			impulse: Impulse{
				ID:        "c",
				Title:     "snack",
				Price:     -1,
				Category:  CategoryFood,
				Status:    StatusCooldown,
				CreatedAt: base,
				ReviewAt:  review,
			},
			wantErr: true,
		},
		{
			name: "urge strength out of range",
			impulse: Impulse{
				ID:           "d",
				Title:        "game",
				UrgeStrength: 11,
				Category:     CategoryDigital,
				Status:       StatusCooldown,
				CreatedAt:    base,
				ReviewAt:     review,
			},
			wantErr: true,
		},
		{
			name: "review before creation",
			impulse: Impulse{
				ID:        "e",
				Title:     "shoes",
				Category:  CategoryShopping,
				Status:    StatusCooldown,
				CreatedAt: base,
				ReviewAt:  base.Add(-time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.impulse.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsRegretCheckDue(t *testing.T) {
	now := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	imp := Impulse{Status: StatusBought, RegretCheckAt: &past}
	if !imp.IsRegretCheckDue(now) {
		t.Error("expected regret check to be due when RegretCheckAt is in the past")
	}

	imp.RegretCheckAt = &future
	if imp.IsRegretCheckDue(now) {
		t.Error("expected regret check not due when RegretCheckAt is in the future")
	}

	imp.Status = StatusSkipped
	imp.RegretCheckAt = &past
	if imp.IsRegretCheckDue(now) {
		t.Error("skipped records never have a due regret check")
	}

	imp.Status = StatusBought
	imp.RegretCheckAt = nil
	if imp.IsRegretCheckDue(now) {
		t.Error("a resolved regret check (nil RegretCheckAt) is not due")
	}
}

func TestCooldownRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	imp := Impulse{Status: StatusCooldown, ReviewAt: now.Add(30 * time.Minute)}
	if got := imp.CooldownRemaining(now); got != 30*time.Minute {
		t.Errorf("CooldownRemaining() = %v, want 30m", got)
	}

	imp.ReviewAt = now.Add(-time.Minute)
	if got := imp.CooldownRemaining(now); got != 0 {
		t.Errorf("CooldownRemaining() past due = %v, want 0", got)
	}

	imp.Status = StatusDecision
	if got := imp.CooldownRemaining(now); got != 0 {
		t.Errorf("CooldownRemaining() on non-cooldown status = %v, want 0", got)
	}
}

func TestGoalProgress(t *testing.T) {
	g := SavingsGoal{ID: "g1", Name: "new bike", Target: 200}

	if got := g.Progress(50); got != 0.25 {
		t.Errorf("Progress(50) = %v, want 0.25", got)
	}
	if got := g.Progress(500); got != 1 {
		t.Errorf("Progress(500) = %v, want clamped 1", got)
	}
	if !g.IsAchieved(200) {
		t.Error("goal should be achieved at exactly the target")
	}
	if g.IsAchieved(199.99) {
		t.Error("goal should not be achieved below the target")
	}
}
