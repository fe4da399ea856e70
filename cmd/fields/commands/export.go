package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fields/internal/sheet"
)

// export <out>: dump the field catalog through the sheet layer. The format
// is picked by extension (.csv, .xlsx).
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.{csv,xlsx}>",
		Short: "Export the field catalog to CSV or Excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := appCtx.Catalog.List()
			if err != nil {
				return err
			}

			s := sheet.NewWithData("Fields", nil)
			for _, r := range recs {
				s.AddRow(sheet.Row{
					"Name":    r.Name,
					"Value":   r.Value,
					"Created": r.CreatedAt.Format(time.RFC3339),
					"ID":      r.ID,
				})
			}
			if err := saveSheet(s, args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported %d records to %s\n", len(recs), args[0])
			return nil
		},
	}
}
