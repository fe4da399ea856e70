package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fields/internal/log"
	"fields/internal/permit"
	"fields/internal/watch"
)

// scan <dir>: discover candidate permit files and summarize each. With
// --watch the command keeps running and summarizes new arrivals until
// interrupted.
func scanCmd() *cobra.Command {
	var watchMode bool
	var maxItems int

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Discover and summarize permit files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if maxItems <= 0 {
				maxItems = cfg.MaxItems
			}

			paths, err := appCtx.Permits.Discover(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Found %d candidate permit files in %s\n\n", len(paths), dir)

			failed := 0
			for _, res := range appCtx.Permits.Batch(paths, maxItems) {
				if res.Err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "skipping %s: %v\n", res.Path, res.Err)
					continue
				}
				printSummary(res.Summary)
				fmt.Println()
			}
			if !watchMode {
				if failed > 0 {
					return fmt.Errorf("%d of %d files failed", failed, len(paths))
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.New(dir, func(path string) bool {
				return permit.MatchesAny(path, cfg.ScanPatterns)
			})
			logger := log.WithComponent("cli")
			err = w.Run(ctx, func(path string) {
				sum, err := appCtx.Permits.SummarizeFile(path, maxItems)
				if err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("summarize failed")
					return
				}
				printSummary(sum)
				fmt.Println()
			})
			if ctx.Err() != nil {
				return nil // interrupted
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&watchMode, "watch", false, "keep watching the directory for new permit files")
	cmd.Flags().IntVarP(&maxItems, "max-length", "l", 0,
		"maximum entries per extracted category (default from config)")
	return cmd
}
