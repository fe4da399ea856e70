package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fields/internal/domain"
	"fields/internal/log"
)

func createFieldCmd() *cobra.Command {
	var name, value string

	cmd := &cobra.Command{
		Use:   "create-field",
		Short: "Create a field record in the local catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("cli")
			logger.Debug().Str("name", name).Str("value", value).Msg("creating field")

			if err := appCtx.Catalog.Put(domain.Record{Name: name, Value: value}); err != nil {
				return err
			}
			fmt.Printf("Created field: %s = %s\n", name, value)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name of the field")
	cmd.Flags().StringVar(&value, "value", "", "value of the field")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
