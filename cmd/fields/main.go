package main

import (
	"os"

	"fields/cmd/fields/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
