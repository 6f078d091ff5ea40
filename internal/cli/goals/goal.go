// Package goals holds the savings-goal commands. Goal progress is derived
// from the cumulative price of skipped impulses, never stored.
package goals

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/stats"
	"github.com/kmcrane/urge/internal/utils"
)

type GoalAddCmd struct {
	Name        string  `arg:"" help:"Goal name."`
	Target      float64 `arg:"" help:"Target amount to save."`
	Description string  `short:"d" help:"What the goal is for."`
}

func (c *GoalAddCmd) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	goal := models.SavingsGoal{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Target:      c.Target,
		Description: c.Description,
		CreatedAt:   time.Now(),
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	fmt.Printf("Goal %q added, target %s.\n", goal.Name, utils.FormatMoney(goal.Target, settings.Currency))
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with 'urge goal add <name> <target>'.")
		return nil
	}

	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	saved := stats.TotalSaved(impulses)
	fmt.Printf("Total saved so far: %s\n\n", utils.FormatMoney(saved, settings.Currency))

	for _, goal := range goals {
		progress := goal.Progress(saved)
		marker := " "
		if goal.IsAchieved(saved) {
			marker = "✓"
		}
		fmt.Printf("%s %s  %-24s %s of %s (%.0f%%)\n",
			marker,
			cli.ShortID(goal.ID),
			goal.Name,
			utils.FormatMoney(min(saved, goal.Target), settings.Currency),
			utils.FormatMoney(goal.Target, settings.Currency),
			progress*100,
		)
		if goal.Description != "" {
			fmt.Printf("     %s\n", goal.Description)
		}
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID or ID prefix."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	var match *models.SavingsGoal
	for i := range goals {
		if goals[i].ID == c.ID || cli.ShortID(goals[i].ID) == c.ID || goals[i].Name == c.ID {
			if match != nil {
				return fmt.Errorf("%q is ambiguous", c.ID)
			}
			match = &goals[i]
		}
	}
	if match == nil {
		return fmt.Errorf("no goal matches %q", c.ID)
	}

	if err := ctx.Store.DeleteGoal(match.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	fmt.Printf("Deleted goal %q.\n", match.Name)
	return nil
}
