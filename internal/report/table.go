package report

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	_taskColors = []lipgloss.Color{
		"#F2A365", "#7FB3D5", "#82E0AA", "#F7DC6F",
		"#C39BD3", "#F1948A", "#76D7C4", "#D7BDE2",
	}

	_styleHeader = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1)

	_styleCell = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Padding(0, 1)

	_styleBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// colorOf keeps all the work of one base task in the same color, run after run.
func colorOf(baseName string) lipgloss.Color {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(baseName))

	return _taskColors[hash.Sum32()%uint32(len(_taskColors))]
}

// RenderTable writes the grid: department row as header, resource names,
// then one row per day with the cells colored by base task.
func RenderTable(w io.Writer, grid *DayGrid) error {
	rows := append(
		[][]string{grid.ResourceRow()},
		grid.DayRows()...,
	)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(_styleBorder).
		BorderRow(true).
		Headers(grid.DepartmentRow()...).
		Rows(rows...).
		StyleFunc(
			func(row, col int) lipgloss.Style {
				// the resource row follows the header
				if row == table.HeaderRow || row == 0 || col == 0 {
					return _styleHeader
				}

				cell := rows[row][col]
				if len(cell) == 0 {
					return _styleCell
				}

				return _styleCell.Foreground(colorOf(baseNameOf(cell)))
			},
		)

	_, errWrite := fmt.Fprintln(w, t.Render())

	return errWrite
}
