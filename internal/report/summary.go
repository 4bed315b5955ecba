package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/TudorHulban/dayscheduler"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type TaskSummary struct {
	Task     string
	Resource string
	StartDay int
	EndDay   int
	WorkTime float64
}

// Summary lists every committed task once, by start day then name.
func Summary(ledger *dayscheduler.Ledger) []TaskSummary {
	workTimes := ledger.WorkTimePerTask()

	var result []TaskSummary

	seen := make(map[string]bool, len(workTimes))

	for _, resourceName := range ledger.ResourceNames() {
		for _, assignment := range ledger.Assignments(resourceName) {
			if seen[assignment.Task.Name] {
				continue
			}

			seen[assignment.Task.Name] = true

			result = append(
				result,

				TaskSummary{
					Task:     assignment.Task.Name,
					Resource: resourceName,
					StartDay: assignment.Task.StartDay(),
					EndDay:   assignment.Task.EndDay(),
					WorkTime: workTimes[assignment.Task.Name],
				},
			)
		}
	}

	slices.SortFunc(
		result,
		func(a, b TaskSummary) int {
			return cmp.Or(
				cmp.Compare(a.StartDay, b.StartDay),
				cmp.Compare(a.Task, b.Task),
			)
		},
	)

	return result
}

func RenderSummary(w io.Writer, summaries []TaskSummary) error {
	rows := make([][]string, len(summaries))

	for ix, summary := range summaries {
		rows[ix] = []string{
			summary.Task,
			summary.Resource,
			fmt.Sprint(summary.StartDay),
			fmt.Sprint(summary.EndDay),
			fmt.Sprintf("%.1f", summary.WorkTime),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(_styleBorder).
		Headers("Task", "Resource", "Start", "End", "Work").
		Rows(rows...).
		StyleFunc(
			func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return _styleHeader
				}

				return _styleCell
			},
		)

	_, errWrite := fmt.Fprintln(w, t.Render())

	return errWrite
}
