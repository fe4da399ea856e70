package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// stats <file>: per-worksheet, per-column value statistics for a CSV file
// or Excel workbook.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Show workbook statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSheet(args[0])
			if err != nil {
				return err
			}
			st := s.Stats()

			fmt.Printf("Sheets: %d  Total rows: %d\n\n", st.Sheets, st.TotalRows)

			var out [][]string
			for _, name := range s.SheetNames() {
				ss := st.BySheet[name]
				for _, h := range ss.Headers {
					cs := ss.ByColumn[h]
					out = append(out, []string{
						name,
						h,
						strconv.Itoa(cs.Values),
						strconv.Itoa(cs.Empty),
						strconv.Itoa(cs.Unique),
					})
				}
			}

			w := tablewriter.NewWriter(os.Stdout)
			w.Header("sheet", "column", "values", "empty", "unique")
			if err := w.Bulk(out); err != nil {
				return err
			}
			return w.Render()
		},
	}
}
