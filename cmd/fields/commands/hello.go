package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fields/internal/log"
)

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Say hello",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("cli")
			logger.Debug().Msg("executing hello command")
			fmt.Println("Hello from Fields!")
			return nil
		},
	}
}
