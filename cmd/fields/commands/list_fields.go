package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func listFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-fields",
		Short: "List the field records in the local catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := appCtx.Catalog.List()
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("catalog is empty")
				return nil
			}

			out := make([][]string, 0, len(recs))
			for _, r := range recs {
				out = append(out, []string{r.Name, r.Value, r.CreatedAt.Format(time.RFC3339), r.ID})
			}

			w := tablewriter.NewWriter(os.Stdout)
			w.Header("name", "value", "created", "id")
			if err := w.Bulk(out); err != nil {
				return err
			}
			return w.Render()
		},
	}
}
