package models

import (
	"fmt"
	"time"
)

// SavingsGoal is a target amount funded by the prices of skipped impulses.
type SavingsGoal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Target      float64    `json:"target"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
}

func (g *SavingsGoal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if g.Target <= 0 {
		return fmt.Errorf("goal target must be greater than zero")
	}
	return nil
}

// Progress returns how far along the goal is, given the cumulative sum of
// skipped-impulse prices. The fraction is clamped to [0, 1].
func (g *SavingsGoal) Progress(saved float64) float64 {
	if g.Target <= 0 {
		return 0
	}
	p := saved / g.Target
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// IsAchieved reports whether cumulative savings meet the target.
func (g *SavingsGoal) IsAchieved(saved float64) bool {
	return saved >= g.Target
}
