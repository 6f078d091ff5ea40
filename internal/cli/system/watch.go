package system

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/notifier"
	"github.com/kmcrane/urge/internal/watch"
)

type WatchCmd struct {
	Interval time.Duration `help:"How often to re-check timestamps." default:"30s"`
}

func (c *WatchCmd) Validate() error {
	if c.Interval < time.Second {
		return fmt.Errorf("interval must be at least 1s")
	}
	return nil
}

func (c *WatchCmd) Run(cliCtx *cli.Context) error {
	if err := cliCtx.Store.Load(); err != nil {
		return err
	}

	interval := c.Interval
	if interval == 0 {
		interval = constants.DefaultWatchInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching for due cool-downs every %s. Ctrl-C to stop.\n", interval)

	w := watch.New(cliCtx.Store, notifier.New(), interval)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("Stopped.")
	return nil
}
