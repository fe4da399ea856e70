package sheet

import (
	"fmt"
	"sort"
)

// Row is one spreadsheet row keyed by column header.
type Row map[string]string

// Sheet holds tabular permit data grouped into named worksheets, with a
// cursor on the worksheet operations apply to. Headers are always the
// sorted union of the current worksheet's row keys.
type Sheet struct {
	worksheets map[string][]Row
	order      []string
	current    string
}

// DefaultSheetName is used when no worksheet name is given.
const DefaultSheetName = "Sheet1"

// New returns an empty Sheet with a single default worksheet.
func New() *Sheet { return NewWithData(DefaultSheetName, nil) }

// NewWithData returns a Sheet whose initial worksheet holds rows.
func NewWithData(name string, rows []Row) *Sheet {
	if name == "" {
		name = DefaultSheetName
	}
	return &Sheet{
		worksheets: map[string][]Row{name: rows},
		order:      []string{name},
		current:    name,
	}
}

// CreateSheet adds a new worksheet and makes it current.
func (s *Sheet) CreateSheet(name string, rows []Row) error {
	if _, ok := s.worksheets[name]; ok {
		return fmt.Errorf("sheet %q already exists", name)
	}
	s.worksheets[name] = rows
	s.order = append(s.order, name)
	s.current = name
	return nil
}

// SwitchSheet moves the cursor to an existing worksheet.
func (s *Sheet) SwitchSheet(name string) error {
	if _, ok := s.worksheets[name]; !ok {
		return fmt.Errorf("sheet %q does not exist", name)
	}
	s.current = name
	return nil
}

// RemoveSheet deletes a worksheet. The last remaining worksheet cannot be
// removed.
func (s *Sheet) RemoveSheet(name string) error {
	if _, ok := s.worksheets[name]; !ok {
		return fmt.Errorf("sheet %q does not exist", name)
	}
	if len(s.worksheets) <= 1 {
		return fmt.Errorf("cannot remove the only remaining worksheet")
	}
	delete(s.worksheets, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.current == name {
		s.current = s.order[0]
	}
	return nil
}

// SheetNames returns worksheet names in creation order.
func (s *Sheet) SheetNames() []string {
	return append([]string(nil), s.order...)
}

// CurrentSheet returns the name of the worksheet under the cursor.
func (s *Sheet) CurrentSheet() string { return s.current }

// HasSheet reports whether a worksheet exists.
func (s *Sheet) HasSheet(name string) bool {
	_, ok := s.worksheets[name]
	return ok
}

// SheetData returns the rows of a named worksheet.
func (s *Sheet) SheetData(name string) ([]Row, error) {
	rows, ok := s.worksheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q does not exist", name)
	}
	return rows, nil
}

// AddRow appends a row to the current worksheet.
func (s *Sheet) AddRow(row Row) {
	s.worksheets[s.current] = append(s.worksheets[s.current], row)
}

// AddRows appends several rows to the current worksheet.
func (s *Sheet) AddRows(rows []Row) {
	for _, r := range rows {
		s.AddRow(r)
	}
}

// Row returns the i-th row of the current worksheet.
func (s *Sheet) Row(i int) (Row, bool) {
	rows := s.worksheets[s.current]
	if i < 0 || i >= len(rows) {
		return nil, false
	}
	return rows[i], true
}

// Rows returns the current worksheet's rows.
func (s *Sheet) Rows() []Row { return s.worksheets[s.current] }

// Len returns the number of rows in the current worksheet.
func (s *Sheet) Len() int { return len(s.worksheets[s.current]) }

// Column returns every value of one column in the current worksheet;
// rows lacking the column contribute an empty string.
func (s *Sheet) Column(name string) []string {
	rows := s.worksheets[s.current]
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[name]
	}
	return out
}

// Headers returns the sorted union of column names across the current
// worksheet's rows.
func (s *Sheet) Headers() []string {
	return headersFor(s.worksheets[s.current])
}

func headersFor(rows []Row) []string {
	set := make(map[string]struct{})
	for _, r := range rows {
		for k := range r {
			set[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Filter returns a new single-worksheet Sheet holding the current
// worksheet's rows that satisfy keep.
func (s *Sheet) Filter(keep func(Row) bool) *Sheet {
	var rows []Row
	for _, r := range s.worksheets[s.current] {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return NewWithData(DefaultSheetName, rows)
}

// SortByColumn orders the current worksheet by one column, in place.
// Rows with an empty value sort last regardless of direction.
func (s *Sheet) SortByColumn(column string, descending bool) {
	rows := s.worksheets[s.current]
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][column], rows[j][column]
		if (a == "") != (b == "") {
			return b == ""
		}
		if descending {
			return a > b
		}
		return a < b
	})
}

// String summarises worksheet and row counts.
func (s *Sheet) String() string {
	total := 0
	for _, rows := range s.worksheets {
		total += len(rows)
	}
	return fmt.Sprintf("Sheet(sheets=%d, total_rows=%d, current='%s')",
		len(s.worksheets), total, s.current)
}
