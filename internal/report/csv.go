package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV exports the grid in the same layout as the table.
// Cells holding more than one task keep their line breaks, quoted.
func WriteCSV(w io.Writer, grid *DayGrid) error {
	writer := csv.NewWriter(w)

	records := append(
		[][]string{
			grid.DepartmentRow(),
			grid.ResourceRow(),
		},
		grid.DayRows()...,
	)

	if errWrite := writer.WriteAll(records); errWrite != nil {
		return fmt.Errorf("write csv: %w", errWrite)
	}

	return nil
}
