package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/dayscheduler/internal/config"
	"github.com/TudorHulban/dayscheduler/internal/logger"
)

// app carries what every command needs once the root flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.AppConfig
	log *logger.Logger
}

func newRootCommand() *cobra.Command {
	var state app

	root := &cobra.Command{
		Use:   "dayscheduler",
		Short: "Plans department work day by day over a resource roster",
		Long: `dayscheduler reads a plan of task rows with per department durations,
wires the department dependency rules, merges the QC steps and assigns
every task to a resource of its department, filling whole and partial days.

Settings come from ./dayscheduler.yaml (or --config), DAYSCHEDULER_* environment
variables and flags, flags winning.`,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if state.log != nil {
				_ = state.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&state.configPath, "config", "", "configuration file (default ./dayscheduler.yaml when present)")
	root.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "log level, overrides logger.level")

	root.AddCommand(
		newScheduleCommand(&state),
		newHistoryCommand(&state),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, errLoad := config.Load(a.configPath)
	if errLoad != nil {
		return fmt.Errorf("load config: %w", errLoad)
	}

	// stdout is kept for the report
	log, errBuild := logger.Build(
		&logger.ParamsBuild{
			Config: cfg.Logger,
			Out:    cmd.ErrOrStderr(),
			Err:    cmd.ErrOrStderr(),
		},
	)
	if errBuild != nil {
		return fmt.Errorf("build logger: %w", errBuild)
	}

	if len(a.logLevel) > 0 {
		if errLevel := log.SetLevel(a.logLevel); errLevel != nil {
			return errLevel
		}
	}

	a.cfg = cfg
	a.log = log

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	errExecute := newRootCommand().ExecuteContext(ctx)

	stop()

	if errExecute != nil {
		os.Exit(1)
	}
}
