package impulses

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/utils"
)

type DecideCmd struct {
	ID    string `arg:"" help:"Impulse ID, ID prefix, or title."`
	Skip  bool   `help:"Skip the purchase."`
	Buy   bool   `help:"Buy it anyway."`
	Later bool   `help:"Save it for later."`

	Feeling string `short:"f" help:"How skipping feels (relieved|still_craving|neutral)."`
	Force   bool   `help:"Decide before the cool-down has elapsed."`
}

func (c *DecideCmd) Validate() error {
	picked := 0
	for _, b := range []bool{c.Skip, c.Buy, c.Later} {
		if b {
			picked++
		}
	}
	if picked != 1 {
		return fmt.Errorf("choose exactly one of --skip, --buy, --later")
	}
	if c.Feeling != "" {
		switch models.SkippedFeeling(c.Feeling) {
		case models.SkippedRelieved, models.SkippedStillCraving, models.SkippedNeutral:
		default:
			return fmt.Errorf("invalid feeling: %s", c.Feeling)
		}
		if !c.Skip {
			return fmt.Errorf("--feeling only applies to --skip")
		}
	}
	return nil
}

func (c *DecideCmd) Run(ctx *cli.Context) error {
	imp, err := ctx.Store.GetImpulse(c.ID)
	if err != nil {
		imp, err = ctx.ResolveImpulse(c.ID)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if imp.Status == models.StatusCooldown && !imp.IsDecisionDue(now) {
		remaining := utils.HumanDuration(imp.CooldownRemaining(now))
		if settings.StrictMode {
			return fmt.Errorf("cool-down has %s left and strict mode is on", remaining)
		}
		if !c.Force {
			return fmt.Errorf("cool-down has %s left, use --force to decide early", remaining)
		}
	}

	decision := lifecycle.DecisionSkip
	switch {
	case c.Buy:
		decision = lifecycle.DecisionBuy
	case c.Later:
		decision = lifecycle.DecisionLater
	}

	regretDelay := time.Duration(settings.RegretDelayHours) * time.Hour
	updated, err := lifecycle.RecordDecision(imp, decision, models.SkippedFeeling(c.Feeling), regretDelay, now)
	if err != nil {
		return err
	}

	if err := ctx.Store.UpdateImpulse(updated); err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}

	switch decision {
	case lifecycle.DecisionSkip:
		fmt.Printf("Skipped %q", updated.Title)
		if updated.Price > 0 {
			fmt.Printf(", %s stays in your pocket", utils.FormatMoney(updated.Price, settings.Currency))
		}
		fmt.Println()
	case lifecycle.DecisionBuy:
		fmt.Printf("Bought %q. Regret check scheduled for %s.\n",
			updated.Title, updated.RegretCheckAt.In(ctx.Location()).Format("2006-01-02 15:04"))
	case lifecycle.DecisionLater:
		fmt.Printf("Saved %q for later. Reopen it with 'urge reopen %s'.\n", updated.Title, cli.ShortID(updated.ID))
	}
	return nil
}

type ReopenCmd struct {
	ID string `arg:"" help:"Impulse ID, ID prefix, or title."`
}

func (c *ReopenCmd) Run(ctx *cli.Context) error {
	imp, err := ctx.ResolveImpulse(c.ID)
	if err != nil {
		return err
	}

	updated, err := lifecycle.Reopen(imp)
	if err != nil {
		return err
	}

	if err := ctx.Store.UpdateImpulse(updated); err != nil {
		return fmt.Errorf("failed to save impulse: %w", err)
	}

	fmt.Printf("Reopened %q, ready to decide.\n", updated.Title)
	return nil
}
