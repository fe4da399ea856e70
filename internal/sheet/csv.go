package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVString encodes the current worksheet as CSV with a header row.
func (s *Sheet) CSVString(delimiter rune) (string, error) {
	var b strings.Builder
	if err := s.writeCSV(&b, delimiter); err != nil {
		return "", err
	}
	return b.String(), nil
}

// SaveCSV writes the current worksheet to a CSV file, creating parent
// directories as needed.
func (s *Sheet) SaveCSV(path string, delimiter rune) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.writeCSV(f, delimiter); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (s *Sheet) writeCSV(w io.Writer, delimiter rune) error {
	headers := s.Headers()
	if len(headers) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range s.Rows() {
		record := make([]string, len(headers))
		for i, h := range headers {
			record[i] = row[h]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FromCSVFile loads a CSV file into a single-worksheet Sheet. The first
// record is the header row.
func FromCSVFile(path string, delimiter rune) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := readCSV(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// FromCSVString loads CSV text into a single-worksheet Sheet.
func FromCSVString(data string, delimiter rune) (*Sheet, error) {
	return readCSV(strings.NewReader(data), delimiter)
}

func readCSV(r io.Reader, delimiter rune) (*Sheet, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return New(), nil
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return NewWithData(DefaultSheetName, rows), nil
}
