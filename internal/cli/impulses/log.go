// Package impulses holds the commands that drive the impulse lifecycle:
// logging an urge, listing, deciding, regret feedback, delete and clear.
package impulses

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/utils"
)

type LogCmd struct {
	Title    string  `arg:"" help:"What you want to buy."`
	Price    float64 `short:"p" help:"Price of the item." default:"0"`
	Category string  `short:"c" help:"Category (food|shopping|digital|entertainment|transport|health|hobby|other)." default:"other"`
	Emotion  string  `short:"e" help:"How you feel right now (stressed|bored|sad|excited|anxious|tired)."`
	Urgency  string  `short:"u" help:"How needed it is (essential|nice_to_have|impulse)." default:"impulse"`
	Strength int     `short:"s" help:"Urge strength 1-10."`
	Notes    string  `short:"n" help:"Free-form notes."`
	Source   string  `help:"App or site that triggered the urge."`
	Location string  `help:"Where you are."`
	Cooldown int     `help:"Override the cool-down for this impulse, in minutes."`
}

func (c *LogCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if c.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if c.Strength != 0 && (c.Strength < 1 || c.Strength > 10) {
		return fmt.Errorf("strength must be between 1 and 10")
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must be positive")
	}
	if _, err := models.ParseCategory(c.Category); err != nil {
		return err
	}
	if _, err := models.ParseEmotion(c.Emotion); err != nil {
		return err
	}
	if _, err := models.ParseUrgency(c.Urgency); err != nil {
		return err
	}
	return nil
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cooldownMinutes := settings.CooldownMinutes
	if c.Cooldown > 0 {
		cooldownMinutes = c.Cooldown
	}
	cooldown := time.Duration(cooldownMinutes) * time.Minute

	category, _ := models.ParseCategory(c.Category)
	emotion, _ := models.ParseEmotion(c.Emotion)
	urgency, _ := models.ParseUrgency(c.Urgency)

	imp := lifecycle.NewImpulse(uuid.NewString(), c.Title, category, c.Price, cooldown, time.Now())
	imp.Emotion = emotion
	imp.Urgency = urgency
	imp.UrgeStrength = c.Strength
	imp.Notes = c.Notes
	imp.SourceApp = c.Source
	imp.Location = c.Location

	if err := imp.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddImpulse(imp); err != nil {
		return fmt.Errorf("failed to save impulse: %w", err)
	}

	fmt.Printf("Logged %q [%s]\n", imp.Title, cli.ShortID(imp.ID))
	fmt.Printf("Cool-down ends %s (%s)\n",
		imp.ReviewAt.In(ctx.Location()).Format("2006-01-02 15:04"),
		utils.HumanDuration(imp.CooldownRemaining(time.Now())))
	return nil
}
