package main

import (
	"os"

	"sudosolve/cmd/sudosolve/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
