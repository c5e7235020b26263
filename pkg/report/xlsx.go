package report

import (
	"fmt"
	"gmao/pkg/domain"
	"io"

	"github.com/xuri/excelize/v2"
)

const historySheet = "Sensor history"

type xlsxRenderer struct{}

func (xlsxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxRenderer) Extension() string { return "xlsx" }

// Render lays the history out on a single sheet: sensor block, movements,
// then the before and after maintenance checklists.
func (xlsxRenderer) Render(w io.Writer, history *domain.SensorHistory) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(historySheet)
	if err != nil {
		return fmt.Errorf("could not create stream writer: %w", err)
	}

	rows := [][]any{
		{"ID", history.SensorID.String()},
		{"Type", history.Type},
		{"Subtype", history.Subtype},
		{},
		{"--- Movements ---"},
		{"Chantier", "Departed", "Returned", "Comment"},
	}
	for _, m := range history.Movements {
		rows = append(rows, []any{m.Chantier, formatTime(m.DepartedAt), formatTime(m.ReturnedAt), m.Comment})
	}
	rows = append(rows, []any{})
	rows = append(rows, checklistRows("--- Checklist BEFORE maintenance ---", history.Responses.Before)...)
	rows = append(rows, []any{})
	rows = append(rows, checklistRows("--- Checklist AFTER maintenance ---", history.Responses.After)...)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("could not compute cell name: %w", err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("could not flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write xlsx: %w", err)
	}

	return nil
}

func checklistRows(title string, responses []domain.ResponseDetail) [][]any {
	rows := [][]any{
		{title},
		{"Item", "Checked", "Technician", "Date"},
	}
	for _, r := range responses {
		rows = append(rows, []any{r.Label, mark(r.IsChecked), r.User.Name, formatTime(r.CheckedAt)})
	}

	return rows
}
