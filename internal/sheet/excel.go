package sheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor = "366092"
	maxColumnWidth  = 50
)

// SaveExcel writes every worksheet to an Excel workbook with a bold styled
// header row and width-fitted columns.
func (s *Sheet) SaveExcel(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("build header style: %w", err)
	}

	for _, name := range s.order {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeWorksheet(f, name, s.worksheets[name], headerStyle); err != nil {
			return err
		}
	}

	// Drop excelize's default sheet unless it is one of ours.
	if !s.HasSheet(DefaultSheetName) {
		_ = f.DeleteSheet(DefaultSheetName)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeWorksheet(f *excelize.File, name string, rows []Row, headerStyle int) error {
	headers := headersFor(rows)
	if len(headers) == 0 {
		return nil
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("write header %q on %q: %w", h, name, err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(name, first, last, headerStyle); err != nil {
		return fmt.Errorf("style header on %q: %w", name, err)
	}

	for i, row := range rows {
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, row[h]); err != nil {
				return fmt.Errorf("write cell %s on %q: %w", cell, name, err)
			}
		}
	}

	// Fit each column to its longest value, with padding and a cap.
	for col, h := range headers {
		width := len(h)
		for _, row := range rows {
			if l := len(row[h]); l > width {
				width = l
			}
		}
		if width+2 < maxColumnWidth {
			width += 2
		} else {
			width = maxColumnWidth
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, colName, colName, float64(width)); err != nil {
			return fmt.Errorf("size column %s on %q: %w", colName, name, err)
		}
	}
	return nil
}

// FromExcelFile loads every worksheet of an Excel workbook. headerRow is the
// 1-based row holding column names; rows with no values are skipped.
func FromExcelFile(path string, headerRow int) (*Sheet, error) {
	if headerRow < 1 {
		headerRow = 1
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var s *Sheet
	for _, name := range f.GetSheetList() {
		cells, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q of %s: %w", name, path, err)
		}
		rows := rowsFromCells(cells, headerRow)
		if s == nil {
			s = NewWithData(name, rows)
			continue
		}
		if err := s.CreateSheet(name, rows); err != nil {
			return nil, err
		}
	}
	if s == nil {
		return New(), nil
	}
	s.current = s.order[0]
	return s, nil
}

func rowsFromCells(cells [][]string, headerRow int) []Row {
	if len(cells) < headerRow {
		return nil
	}
	headers := make([]string, len(cells[headerRow-1]))
	for i, h := range cells[headerRow-1] {
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}

	var rows []Row
	for _, record := range cells[headerRow:] {
		row := make(Row, len(headers))
		hasData := false
		for i, h := range headers {
			v := ""
			if i < len(record) {
				v = record[i]
			}
			if v != "" {
				hasData = true
			}
			row[h] = v
		}
		if hasData {
			rows = append(rows, row)
		}
	}
	return rows
}
