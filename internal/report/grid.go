// Package report turns a ledger into the day by resource grid the planners
// read, as a terminal table or a CSV export.
package report

import (
	"fmt"
	"strings"

	"github.com/TudorHulban/dayscheduler"
)

const _DaysHeader = "Days"

// DayGrid holds one column per resource and one row per day, day 1 first.
type DayGrid struct {
	Departments []string // aligned with Resources
	Resources   []string

	// Cells[day-1][column], lines of "<task> (<work>)" in record order.
	Cells [][]string
}

func Cell(assignment dayscheduler.Assignment) string {
	return fmt.Sprintf(
		"%s (%.1f)",
		assignment.Task.Name,
		assignment.WorkTime,
	)
}

// Grid lays out the ledger records from day 1 to the last working day.
func Grid(ledger *dayscheduler.Ledger, resources []*dayscheduler.Resource) *DayGrid {
	result := DayGrid{
		Departments: make([]string, len(resources)),
		Resources:   make([]string, len(resources)),
		Cells:       make([][]string, ledger.LastDay()),
	}

	for ix := range result.Cells {
		result.Cells[ix] = make([]string, len(resources))
	}

	for column, resource := range resources {
		result.Departments[column] = resource.Department
		result.Resources[column] = resource.Name

		for _, assignment := range ledger.Assignments(resource.Name) {
			row := assignment.Day - 1

			result.Cells[row][column] = joinLine(
				result.Cells[row][column],
				Cell(assignment),
			)
		}
	}

	return &result
}

func joinLine(cell, line string) string {
	if len(cell) == 0 {
		return line
	}

	return cell + "\n" + line
}

func (g *DayGrid) Days() int {
	return len(g.Cells)
}

// DepartmentRow names each department once, on the first of its adjacent
// columns, the others left blank as if merged.
func (g *DayGrid) DepartmentRow() []string {
	result := make([]string, 0, len(g.Departments)+1)
	result = append(result, "")

	for ix, department := range g.Departments {
		if ix > 0 && g.Departments[ix-1] == department {
			result = append(result, "")

			continue
		}

		result = append(result, department)
	}

	return result
}

func (g *DayGrid) ResourceRow() []string {
	return append([]string{_DaysHeader}, g.Resources...)
}

// DayRows returns the cells prefixed by the day number.
func (g *DayGrid) DayRows() [][]string {
	result := make([][]string, len(g.Cells))

	for ix, cells := range g.Cells {
		result[ix] = append(
			[]string{fmt.Sprint(ix + 1)},
			cells...,
		)
	}

	return result
}

// baseNameOf returns the base task name of the first line in a cell.
func baseNameOf(cell string) string {
	firstLine, _, _ := strings.Cut(cell, "\n")

	return dayscheduler.BaseTaskName(firstLine)
}
