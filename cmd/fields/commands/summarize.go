package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"fields/internal/domain"
)

// summarize <file>: extract permit structure and print it.
func summarizeCmd() *cobra.Command {
	var maxItems int

	cmd := &cobra.Command{
		Use:   "summarize <file>",
		Short: "Summarize the contents of a permit file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxItems <= 0 {
				maxItems = cfg.MaxItems
			}
			sum, err := appCtx.Permits.SummarizeFile(args[0], maxItems)
			if err != nil {
				return err
			}
			printSummary(sum)
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxItems, "max-length", "l", 0,
		"maximum entries per extracted category (default from config)")
	return cmd
}

func printSummary(sum domain.Summary) {
	fmt.Printf("File: %s\n", sum.Path)
	fmt.Printf("Type: %s\n", strings.ToUpper(string(sum.Kind)))
	if sum.Pages > 1 {
		fmt.Printf("Pages: %d\n", sum.Pages)
	}
	fmt.Printf("Words: %s\n", humanize.Comma(int64(sum.Words)))
	fmt.Printf("Characters: %s\n", humanize.Comma(int64(sum.Characters)))
	fmt.Println()

	rule := strings.Repeat("-", 50)

	if len(sum.TimeSlots) > 0 {
		fmt.Println("Available Time Slots:")
		fmt.Println(rule)
		for i, slot := range sum.TimeSlots {
			fmt.Printf("%2d. %s\n", i+1, slot)
		}
		fmt.Println()
	}

	if len(sum.FieldNames) > 0 {
		fmt.Println("Available Fields:")
		fmt.Println(rule)
		for i, name := range sum.FieldNames {
			fmt.Printf("%2d. %s\n", i+1, name)
		}
		fmt.Println()
	}

	// Per-field groups, in extraction order; skip fields with no slots.
	if len(sum.FieldSlots) > 0 {
		printed := false
		for _, name := range sum.FieldNames {
			slots := sum.FieldSlots[name]
			if len(slots) == 0 {
				continue
			}
			if !printed {
				fmt.Println("Field-Specific Time Slots:")
				fmt.Println(rule)
				printed = true
			}
			fmt.Printf("%s:\n", name)
			for i, slot := range slots {
				fmt.Printf("   %d. %s\n", i+1, slot)
			}
			fmt.Println()
		}
	}

	fmt.Println("Summary:")
	fmt.Println(rule)
	fmt.Println(sum.Excerpt)
}
