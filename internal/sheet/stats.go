package sheet

// ColumnStats summarises one column of a worksheet.
type ColumnStats struct {
	Values int // total cells, including empty ones
	Empty  int
	Unique int // distinct non-empty values
}

// SheetStats summarises one worksheet.
type SheetStats struct {
	Rows     int
	Columns  int
	Headers  []string
	ByColumn map[string]ColumnStats
}

// Stats summarises a whole workbook.
type Stats struct {
	Sheets    int
	TotalRows int
	Current   string
	BySheet   map[string]SheetStats
}

// Stats computes row, column, and per-column value statistics for every
// worksheet.
func (s *Sheet) Stats() Stats {
	out := Stats{
		Sheets:  len(s.worksheets),
		Current: s.current,
		BySheet: make(map[string]SheetStats, len(s.worksheets)),
	}

	for _, name := range s.order {
		rows := s.worksheets[name]
		out.TotalRows += len(rows)

		headers := headersFor(rows)
		ss := SheetStats{
			Rows:     len(rows),
			Columns:  len(headers),
			Headers:  headers,
			ByColumn: make(map[string]ColumnStats, len(headers)),
		}
		for _, h := range headers {
			cs := ColumnStats{Values: len(rows)}
			distinct := make(map[string]struct{})
			for _, row := range rows {
				v := row[h]
				if v == "" {
					cs.Empty++
					continue
				}
				distinct[v] = struct{}{}
			}
			cs.Unique = len(distinct)
			ss.ByColumn[h] = cs
		}
		out.BySheet[name] = ss
	}
	return out
}
