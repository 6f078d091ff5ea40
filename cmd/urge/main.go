package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kmcrane/urge/internal/cli"
	"github.com/kmcrane/urge/internal/cli/backups"
	"github.com/kmcrane/urge/internal/cli/exports"
	"github.com/kmcrane/urge/internal/cli/goals"
	"github.com/kmcrane/urge/internal/cli/impulses"
	"github.com/kmcrane/urge/internal/cli/insights"
	"github.com/kmcrane/urge/internal/cli/settings"
	"github.com/kmcrane/urge/internal/cli/system"
	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/logger"
	"github.com/kmcrane/urge/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path (.db for SQLite, .json for a plain JSON store)." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize urge storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Log    impulses.LogCmd    `cmd:"" help:"Log a purchase urge and start its cool-down."`
	List   impulses.ListCmd   `cmd:"" help:"List impulses."`
	Decide impulses.DecideCmd `cmd:"" help:"Record a skip/buy/later decision."`
	Reopen impulses.ReopenCmd `cmd:"" help:"Reopen a saved impulse for a decision."`
	Regret impulses.RegretCmd `cmd:"" help:"Answer a regret check for a purchase."`
	Delete impulses.DeleteCmd `cmd:"" help:"Delete an impulse."`
	Clear  impulses.ClearCmd  `cmd:"" help:"Delete all impulses."`

	Stats    insights.StatsCmd    `cmd:"" help:"Show summary statistics."`
	Streak   insights.StreakCmd   `cmd:"" help:"Show skip streaks."`
	Patterns insights.PatternsCmd `cmd:"" help:"Show recurring purchase patterns."`
	Persona  insights.PersonaCmd  `cmd:"" help:"Show your spending persona and weak spots."`
	Score    insights.ScoreCmd    `cmd:"" help:"Show your impulse-control impact score."`

	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a savings goal."`
		List   goals.GoalListCmd   `cmd:"" help:"List savings goals with progress." default:"1"`
		Delete goals.GoalDeleteCmd `cmd:"" help:"Delete a savings goal."`
	} `cmd:"" help:"Manage savings goals."`

	Export exports.ExportCmd `cmd:"" help:"Export impulses as CSV or JSON."`
	Report exports.ReportCmd `cmd:"" help:"Write an HTML activity report."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	Watch  system.WatchCmd  `cmd:"" help:"Watch for due cool-downs and send notifications."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send due notifications once (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A cool-down companion for impulse purchases"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
