package insights

import (
	"fmt"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/stats"
)

type PatternsCmd struct{}

func (c *PatternsCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	loc := ctx.Location()
	patterns := stats.DetectPatterns(impulses, loc)
	if len(patterns) == 0 {
		fmt.Printf("No recurring patterns yet. Patterns need at least %d similar impulses.\n",
			constants.PatternMinOccurrences)
		return nil
	}

	fmt.Println("Recurring patterns:")
	for _, p := range patterns {
		line := fmt.Sprintf("  %-11s %-12s x%-3d %-12s confidence %.0f%%",
			p.Kind, p.Key, p.Occurrences, p.Strength, p.Confidence*100)
		if p.NextAt != nil {
			line += fmt.Sprintf("  next around %s", p.NextAt.In(loc).Format("Jan 2"))
		}
		fmt.Println(line)
	}
	return nil
}

type PersonaCmd struct{}

func (c *PersonaCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	persona := stats.ClassifyPersona(impulses)
	if persona == stats.PersonaUnknown {
		fmt.Printf("Not enough signal yet (%d records minimum).\n", constants.PersonaMinRecords)
		return nil
	}

	fmt.Printf("Spending persona: %s\n", persona)

	weak := stats.WeakCategories(impulses, 3)
	if len(weak) > 0 {
		fmt.Println("Weak spots:")
		for _, cs := range weak {
			fmt.Printf("  %-14s %d logged, %.0f%% regret rate\n", cs.Category, cs.Logged, cs.RegretRate)
		}
	}
	return nil
}
