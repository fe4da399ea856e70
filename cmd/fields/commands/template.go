package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fields/internal/sheet"
)

func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template <out.xlsx>",
		Short: "Write the permit-data Excel template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]
			if !strings.EqualFold(filepath.Ext(out), ".xlsx") {
				return fmt.Errorf("template output must be .xlsx, got %q", out)
			}
			if err := sheet.WriteTemplate(out); err != nil {
				return err
			}
			fmt.Printf("Template written to %s\n", out)
			return nil
		},
	}
}
