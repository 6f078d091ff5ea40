package impulses

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kmcrane/urge/internal/cli"
)

type DeleteCmd struct {
	ID    string `arg:"" help:"Impulse ID, ID prefix, or title."`
	Force bool   `help:"Delete without confirmation."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	imp, err := ctx.ResolveImpulse(c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete %q [%s]? [y/N]: ", imp.Title, cli.ShortID(imp.ID))
		if !confirm() {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteImpulse(imp.ID); err != nil {
		return fmt.Errorf("failed to delete impulse: %w", err)
	}

	fmt.Printf("Deleted %q.\n", imp.Title)
	return nil
}

type ClearCmd struct {
	Force bool `help:"Clear without confirmation."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	impulses, err := ctx.Store.GetAllImpulses()
	if err != nil {
		return fmt.Errorf("failed to load impulses: %w", err)
	}
	if len(impulses) == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	if !c.Force {
		fmt.Printf("This permanently deletes all %d impulses. Continue? [y/N]: ", len(impulses))
		if !confirm() {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// History is the whole point of the app, snapshot before wiping it
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ClearImpulses(); err != nil {
		return fmt.Errorf("failed to clear impulses: %w", err)
	}

	fmt.Printf("Cleared %d impulses.\n", len(impulses))
	return nil
}

func confirm() bool {
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
