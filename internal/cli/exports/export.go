// Package exports holds the export and report commands.
package exports

import (
	"fmt"
	"os"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/export"
)

type ExportCmd struct {
	Format string `arg:"" help:"Export format (csv|json)."`
	Out    string `short:"o" help:"Output file. Defaults to stdout."`
}

func (c *ExportCmd) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("invalid format %q, expected csv or json", c.Format)
	}
	return nil
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}

	if c.Out == "" {
		if c.Format == "csv" {
			return export.WriteCSV(os.Stdout, impulses)
		}
		return export.WriteJSON(os.Stdout, impulses)
	}

	if c.Format == "csv" {
		err = export.ExportCSV(c.Out, impulses)
	} else {
		err = export.ExportJSON(c.Out, impulses)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d impulses to %s\n", len(impulses), c.Out)
	return nil
}

type ReportCmd struct {
	Out string `short:"o" help:"Output file." default:"urge-report.html"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := export.ExportReport(c.Out, impulses, settings.Currency, time.Now(), ctx.Location()); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", c.Out)
	return nil
}
