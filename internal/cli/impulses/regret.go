package impulses

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/stats"
)

type RegretCmd struct {
	ID      string `arg:"" help:"Impulse ID, ID prefix, or title."`
	Rating  int    `short:"r" help:"Regret rating 1-5 (5 = deep regret)."`
	Score   int    `help:"Regret score 0-100, converted to the 1-5 scale." default:"-1"`
	Feeling string `short:"f" help:"Final feeling (regret|worth_it|neutral)."`
	Notes   string `short:"n" help:"What you learned."`
}

func (c *RegretCmd) Validate() error {
	if c.Rating == 0 && c.Score < 0 {
		return fmt.Errorf("provide --rating or --score")
	}
	if c.Rating != 0 && (c.Rating < 1 || c.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if c.Score > 100 {
		return fmt.Errorf("score must be between 0 and 100")
	}
	if c.Rating != 0 && c.Score >= 0 {
		return fmt.Errorf("--rating and --score are mutually exclusive")
	}
	if c.Feeling != "" {
		switch models.FinalFeeling(c.Feeling) {
		case models.FeelingRegret, models.FeelingWorthIt, models.FeelingNeutral:
		default:
			return fmt.Errorf("invalid feeling: %s", c.Feeling)
		}
	}
	return nil
}

func (c *RegretCmd) Run(ctx *cli.Context) error {
	imp, err := ctx.ResolveImpulse(c.ID)
	if err != nil {
		return err
	}

	rating := c.Rating
	if c.Score >= 0 {
		rating = stats.RatingFromScore(c.Score)
	}

	updated, err := lifecycle.RecordRegret(imp, rating, models.FinalFeeling(c.Feeling), c.Notes, time.Now())
	if err != nil {
		return err
	}

	if err := ctx.Store.UpdateImpulse(updated); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	if stats.IsRegretted(updated) {
		fmt.Printf("Recorded: you regret buying %q. That data point helps.\n", updated.Title)
	} else {
		fmt.Printf("Recorded: %q was worth it.\n", updated.Title)
	}
	return nil
}
