package sheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	templateSheetName  = "Permit Data"
	instructionsSheet  = "Instructions"
	templateFillColor  = "4F81BD"
	instructionsColumn = 60
)

var templateColumns = []string{"Field Name", "Permit Type", "Time Slots", "Date", "Status"}

var templateSampleRows = [][]string{
	{"Shoreline North Field", "Athletic Field Use", "Sat 8:00 AM - 1:00 PM", "2025-12-06", "Available"},
	{"Central Park Field", "Recreational Use", "Wed 12:00 PM - 5:00 PM", "2025-12-10", "Booked"},
}

var templateInstructions = []string{
	"",
	"This template is used for managing field permit data.",
	"",
	"Columns:",
	"- Field Name: Name of the field/facility",
	"- Permit Type: Type of permit (Athletic, Recreational, etc.)",
	"- Time Slots: Available time slots for the field",
	"- Date: Date of availability/booking",
	"- Status: Current status (Available, Booked, Maintenance, etc.)",
	"",
	"Instructions:",
	"1. Fill in the data starting from row 2",
	"2. Add new rows as needed",
	"3. Save the file with permit data",
	"4. Import back into the fields application",
}

// WriteTemplate creates an Excel template for collecting permit data: a
// styled data sheet with two sample rows and an Instructions sheet.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(DefaultSheetName, templateSheetName); err != nil {
		return fmt.Errorf("rename template sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{templateFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("build header style: %w", err)
	}

	for col, h := range templateColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(templateSheetName, cell, h); err != nil {
			return fmt.Errorf("write template header %q: %w", h, err)
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(templateSheetName, colName, colName, 20); err != nil {
			return fmt.Errorf("size template column %s: %w", colName, err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(templateColumns), 1)
	if err := f.SetCellStyle(templateSheetName, first, last, headerStyle); err != nil {
		return fmt.Errorf("style template header: %w", err)
	}

	for i, sample := range templateSampleRows {
		for col, v := range sample {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(templateSheetName, cell, v); err != nil {
				return fmt.Errorf("write sample row: %w", err)
			}
		}
	}

	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return fmt.Errorf("create instructions sheet: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("build title style: %w", err)
	}
	if err := f.SetCellValue(instructionsSheet, "A1", "Field Permit Data Template"); err != nil {
		return fmt.Errorf("write instructions title: %w", err)
	}
	if err := f.SetCellStyle(instructionsSheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("style instructions title: %w", err)
	}
	for i, line := range templateInstructions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(instructionsSheet, cell, line); err != nil {
			return fmt.Errorf("write instructions: %w", err)
		}
	}
	if err := f.SetColWidth(instructionsSheet, "A", "A", instructionsColumn); err != nil {
		return fmt.Errorf("size instructions column: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
