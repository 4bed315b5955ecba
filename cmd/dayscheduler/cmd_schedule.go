package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TudorHulban/dayscheduler"
	"github.com/TudorHulban/dayscheduler/internal/config"
	"github.com/TudorHulban/dayscheduler/internal/plan"
	"github.com/TudorHulban/dayscheduler/internal/report"
	"github.com/TudorHulban/dayscheduler/internal/store"
)

type scheduleOptions struct {
	planFile  string
	rulesFile string
	format    string
	output    string
	save      bool
}

func newScheduleCommand(state *app) *cobra.Command {
	var options scheduleOptions

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule the plan and print the day by resource grid",
		Example: `  dayscheduler schedule --plan plan.yaml --rules dependency_rules.json
  dayscheduler schedule --format csv --output schedule.csv --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options.applyTo(cmd, state.cfg)

			if errValidation := state.cfg.IsValid(); errValidation != nil {
				return errValidation
			}

			return state.runSchedule(cmd)
		},
	}

	cmd.Flags().StringVar(&options.planFile, "plan", "", "plan file, overrides input.planFile")
	cmd.Flags().StringVar(&options.rulesFile, "rules", "", "dependency rules file, overrides input.rulesFile")
	cmd.Flags().StringVar(&options.format, "format", "", "output format: table or csv")
	cmd.Flags().StringVar(&options.output, "output", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&options.save, "save", false, "keep the run in the history store")

	return cmd
}

func (o *scheduleOptions) applyTo(cmd *cobra.Command, cfg *config.AppConfig) {
	if len(o.planFile) > 0 {
		cfg.Input.PlanFile = o.planFile
	}

	if len(o.rulesFile) > 0 {
		cfg.Input.RulesFile = o.rulesFile
	}

	if len(o.format) > 0 {
		cfg.Output.Format = o.format
	}

	if len(o.output) > 0 {
		cfg.Output.Path = o.output
	}

	if cmd.Flags().Changed("save") {
		cfg.Store.Enabled = o.save
	}
}

func (a *app) runSchedule(cmd *cobra.Command) error {
	ctx := cmd.Context()

	input, errPlan := plan.Load(a.cfg.Input.PlanFile)
	if errPlan != nil {
		return errPlan
	}

	var rules plan.Rules

	if len(a.cfg.Input.RulesFile) > 0 {
		loaded, errRules := plan.LoadRules(a.cfg.Input.RulesFile)
		if errRules != nil {
			return errRules
		}

		rules = loaded
	}

	tasks, errExpand := plan.Expand(
		&plan.ParamsExpand{
			Plan:               input,
			Rules:              rules,
			QCMergeDepartments: a.cfg.Planning.QCMergeDepartments,
		},
	)
	if errExpand != nil {
		return errExpand
	}

	resources, errResources := plan.Resources(input)
	if errResources != nil {
		return errResources
	}

	a.log.Info(
		"scheduling",

		zap.String("plan", a.cfg.Input.PlanFile),
		zap.Int("tasks", len(tasks)),
		zap.Int("resources", len(resources)),
	)

	ledger, errSchedule := dayscheduler.Schedule(
		ctx,
		&dayscheduler.ParamsSchedule{
			Tasks:      tasks,
			Resources:  resources,
			Logger:     a.log.Logger,
			MaximumDay: a.cfg.Planning.MaximumDay,
		},
	)
	if errSchedule != nil {
		var errUnschedulable *dayscheduler.UnschedulableError

		if errors.As(errSchedule, &errUnschedulable) {
			for _, stalled := range errUnschedulable.Stalled {
				a.log.Error("task not scheduled", zap.Stringer("task", stalled))
			}
		}

		return fmt.Errorf("schedule %s: %w", a.cfg.Input.PlanFile, errSchedule)
	}

	if errWrite := a.writeReport(cmd.OutOrStdout(), ledger, resources); errWrite != nil {
		return errWrite
	}

	a.log.Info(
		"schedule done",

		zap.Int("days", ledger.LastDay()),
	)

	if !a.cfg.Store.Enabled {
		return nil
	}

	history, errOpen := store.Open(ctx, a.cfg.Store.Path)
	if errOpen != nil {
		return errOpen
	}
	defer history.Close()

	runID, errSave := history.SaveRun(
		ctx,
		&store.ParamsSaveRun{
			Ledger:   ledger,
			PlanFile: a.cfg.Input.PlanFile,
		},
	)
	if errSave != nil {
		return errSave
	}

	a.log.Info(
		"run saved",

		zap.Stringer("run", runID),
		zap.String("store", a.cfg.Store.Path),
	)

	return nil
}

func (a *app) writeReport(stdout io.Writer, ledger *dayscheduler.Ledger, resources []*dayscheduler.Resource) error {
	w := stdout

	if len(a.cfg.Output.Path) > 0 {
		f, errCreate := os.Create(a.cfg.Output.Path)
		if errCreate != nil {
			return fmt.Errorf("create report file: %w", errCreate)
		}
		defer f.Close()

		w = f
	}

	grid := report.Grid(ledger, resources)

	if a.cfg.Output.Format == config.FormatCSV {
		return report.WriteCSV(w, grid)
	}

	if errRender := report.RenderTable(w, grid); errRender != nil {
		return errRender
	}

	return report.RenderSummary(w, report.Summary(ledger))
}
