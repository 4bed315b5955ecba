package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/TudorHulban/dayscheduler/internal/store"
)

func newHistoryCommand(state *app) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "history [run id]",
		Short: "List the saved runs, or print the assignments of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(storePath) > 0 {
				state.cfg.Store.Path = storePath
			}

			history, errOpen := store.Open(cmd.Context(), state.cfg.Store.Path)
			if errOpen != nil {
				return errOpen
			}
			defer history.Close()

			if len(args) == 0 {
				return listRuns(cmd, history)
			}

			runID, errParse := uuid.Parse(args[0])
			if errParse != nil {
				return fmt.Errorf("run id %q: %w", args[0], errParse)
			}

			return printRun(cmd, history, runID)
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "history database, overrides store.path")

	return cmd
}

func listRuns(cmd *cobra.Command, history *store.Store) error {
	runs, errRuns := history.Runs(cmd.Context())
	if errRuns != nil {
		return errRuns
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")

		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%s  %s  %s  days: %d  tasks: %d\n",

			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.PlanFile,
			run.LastDay,
			run.Tasks,
		)
	}

	return nil
}

func printRun(cmd *cobra.Command, history *store.Store, runID uuid.UUID) error {
	assignments, errAssignments := history.Assignments(cmd.Context(), runID)
	if errAssignments != nil {
		return errAssignments
	}

	if len(assignments) == 0 {
		return fmt.Errorf("run %s not found", runID)
	}

	var resource string

	for _, assignment := range assignments {
		if assignment.Resource != resource {
			resource = assignment.Resource

			fmt.Fprintf(cmd.OutOrStdout(), "\nResource: %s\n", resource)
		}

		fmt.Fprintf(
			cmd.OutOrStdout(),
			"  Task: %s, Day: %d, Work Time: %.2f\n",

			assignment.Task,
			assignment.Day,
			assignment.WorkTime,
		)
	}

	return nil
}
