package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fields/internal/log"
)

// read-file <file>: print the document with numbered lines. PDFs print one
// numbered entry per page.
func readFileCmd() *cobra.Command {
	var lines int
	var encoding string

	cmd := &cobra.Command{
		Use:   "read-file <file>",
		Short: "Read and display the contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("cli")
			path := args[0]
			logger.Debug().Str("path", path).Msg("reading file")

			if !strings.EqualFold(encoding, "utf-8") {
				return fmt.Errorf("unsupported encoding %q (only utf-8)", encoding)
			}

			content, err := appCtx.Reader.ReadLines(path)
			if err != nil {
				return err
			}
			if lines > 0 && lines < len(content) {
				content = content[:lines]
			}
			for i, line := range content {
				fmt.Printf("%4d: %s\n", i+1, strings.TrimRight(line, " \t\r\n"))
			}

			logger.Info().Int("lines", len(content)).Str("path", path).Msg("file read")
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "number of lines to read (default: all)")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "file encoding")
	return cmd
}
