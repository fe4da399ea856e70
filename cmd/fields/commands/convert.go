package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fields/internal/sheet"
)

// convert <src> <dst>: formats are picked by extension (.csv, .xlsx).
func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Convert permit tables between CSV and Excel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			s, err := loadSheet(src)
			if err != nil {
				return err
			}
			if err := saveSheet(s, dst); err != nil {
				return err
			}
			fmt.Printf("Converted %s -> %s (%d rows)\n", src, dst, s.Len())
			return nil
		},
	}
}

func loadSheet(path string) (*sheet.Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return sheet.FromCSVFile(path, ',')
	case ".xlsx":
		return sheet.FromExcelFile(path, 1)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func saveSheet(s *sheet.Sheet, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return s.SaveCSV(path, ',')
	case ".xlsx":
		return s.SaveExcel(path)
	default:
		return fmt.Errorf("unsupported output format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}
