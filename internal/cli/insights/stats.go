// Package insights holds the read-only analytics commands built on the
// stats folds: summary stats, streaks, patterns, persona and impact score.
package insights

import (
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/stats"
	"github.com/kmcrane/urge/internal/utils"
)

type StatsCmd struct {
	Period string `help:"Window to summarize (day|week|month|all)." default:"all"`
}

func (c *StatsCmd) Validate() error {
	switch c.Period {
	case "day", "week", "month", "all":
		return nil
	}
	return fmt.Errorf("invalid period: %s", c.Period)
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	now := time.Now()
	loc := ctx.Location()

	var summary stats.Summary
	switch c.Period {
	case "day":
		summary = stats.DaySummary(impulses, now, loc)
	case "week":
		summary = stats.WeekSummary(impulses, now, loc)
	case "month":
		start := now.In(loc).AddDate(0, -1, 0)
		summary = stats.SummarizeWindow(impulses, start, now.In(loc).Add(time.Second))
	default:
		summary = stats.Summarize(impulses)
	}

	fmt.Printf("Impulses logged:  %d\n", summary.Logged)
	fmt.Printf("Skipped:          %d\n", summary.Skipped)
	fmt.Printf("Bought:           %d\n", summary.Bought)
	fmt.Printf("Regretted:        %d (%.0f%% of purchases)\n", summary.Regretted, summary.RegretRate)
	fmt.Printf("Money saved:      %s\n", utils.FormatMoney(summary.MoneySaved, settings.Currency))
	fmt.Printf("Money regretted:  %s\n", utils.FormatMoney(summary.MoneyRegretted, settings.Currency))

	if categories := stats.ByCategory(windowed(impulses, c.Period, now, loc)); len(categories) > 0 {
		fmt.Println("\nBy category:")
		for _, cs := range categories {
			fmt.Printf("  %-14s logged %-3d skipped %-3d bought %-3d regret %.0f%%\n",
				cs.Category, cs.Logged, cs.Skipped, cs.Bought, cs.RegretRate)
		}
	}
	return nil
}

func windowed(impulses []models.Impulse, period string, now time.Time, loc *time.Location) []models.Impulse {
	local := now.In(loc)
	switch period {
	case "day":
		start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		return stats.FilterWindow(impulses, start, start.AddDate(0, 0, 1))
	case "week":
		return stats.FilterWindow(impulses, local.AddDate(0, 0, -7), local.Add(time.Second))
	case "month":
		return stats.FilterWindow(impulses, local.AddDate(0, -1, 0), local.Add(time.Second))
	default:
		return impulses
	}
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	streaks := stats.ComputeStreaks(impulses, time.Now(), ctx.Location())
	if streaks.Current == 0 {
		fmt.Println("No active skip streak. Skip something today to start one.")
	} else {
		fmt.Printf("Current skip streak: %d day(s)\n", streaks.Current)
	}
	fmt.Printf("Longest skip streak: %d day(s)\n", streaks.Longest)
	return nil
}

type ScoreCmd struct{}

func (c *ScoreCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	score := stats.ImpactScore(impulses, time.Now(), ctx.Location())
	fmt.Printf("Impact score: %.0f / 100\n", score)

	switch {
	case score >= 75:
		fmt.Println("Excellent impulse control. Keep it up.")
	case score >= 40:
		fmt.Println("Solid progress. The cool-downs are working.")
	default:
		fmt.Println("Early days. Every skipped purchase moves this up.")
	}
	return nil
}
