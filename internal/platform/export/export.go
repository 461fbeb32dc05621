// Package export renders a patient's parsed report entries as an xlsx
// workbook: one sheet with the entries and one with the health plan of
// every prescription.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/advice"
	"github.com/Lakshmitejasri/Automatic-Health-Monitoring-System/internal/domain/report"
)

const (
	ReportsSheet = "Reports"
	PlanSheet    = "Health Plan"
)

// ReportsHeader is the header row of the Reports sheet.
var ReportsHeader = []string{"Entry", "Date", "Doctor", "Diagnosis", "Prescription"}

// PlanHeader is the header row of the Health Plan sheet.
var PlanHeader = []string{"Entry", "Date", "Medication", "Usage", "Recommended Food", "Recommended Exercise", "Next Steps"}

// Workbook builds the xlsx file for one patient and returns its bytes.
func Workbook(patient string, entries []report.Entry, catalog *advice.Catalog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(PlanSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, ReportsSheet, ReportsHeader, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeader(f, PlanSheet, PlanHeader, headerStyle); err != nil {
		return nil, err
	}

	planRow := 2
	for i, e := range entries {
		row := []interface{}{i + 1, e.Date, e.Doctor, e.Diagnosis, e.Prescription}
		if err := setRow(f, ReportsSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, a := range catalog.SuggestHealthPlan(e.Prescription) {
			usage := advice.NoRecommendation
			if a.Found {
				usage = a.Record.Usage
			}
			row := []interface{}{i + 1, e.Date, a.Medication, usage, a.Record.Food, a.Record.Exercise, a.Record.NextStep}
			if err := setRow(f, PlanSheet, planRow, row); err != nil {
				return nil, err
			}
			planRow++
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Diagnosis reports for %s", patient),
		Creator: "health-monitor",
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, header []string, style int) error {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := setRow(f, sheet, 1, row); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", lastCol, 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
