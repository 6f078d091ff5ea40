package impulses

import (
	"fmt"
	"sort"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/utils"
)

type ListCmd struct {
	All      bool   `help:"Include decided impulses."`
	Pending  bool   `help:"Only undecided impulses (the default)."`
	Due      bool   `help:"Only impulses ready for a decision."`
	Category string `short:"c" help:"Filter by category."`
}

func (c *ListCmd) Validate() error {
	set := 0
	for _, b := range []bool{c.All, c.Pending, c.Due} {
		if b {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("--all, --pending, and --due are mutually exclusive")
	}
	if c.Category != "" {
		if _, err := models.ParseCategory(c.Category); err != nil {
			return err
		}
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	now := time.Now()
	impulses = lifecycle.PromoteDue(impulses, now)
	// Best effort: listing still works when the promotion cannot be persisted
	if err := ctx.Store.SaveAllImpulses(impulses); err != nil {
		fmt.Printf("Warning: failed to persist promotions: %v\n", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc := ctx.Location()

	var rows []models.Impulse
	for _, imp := range impulses {
		if c.Due && imp.Status != models.StatusDecision {
			continue
		}
		if !c.All && !c.Due && imp.IsTerminal() {
			continue
		}
		if c.Category != "" && string(imp.Category) != c.Category {
			continue
		}
		rows = append(rows, imp)
	}

	if len(rows) == 0 {
		fmt.Println("No impulses to show. Log one with 'urge log <title>'.")
		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	for _, imp := range rows {
		price := ""
		if imp.Price > 0 {
			price = "  " + utils.FormatMoney(imp.Price, settings.Currency)
		}
		fmt.Printf("%s  %-30s %-14s %-24s%s  %s\n",
			cli.ShortID(imp.ID),
			truncate(imp.Title, 30),
			imp.Category,
			cli.FormatStatus(imp, now),
			price,
			utils.RelativeTime(imp.CreatedAt.In(loc), now.In(loc)),
		)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
