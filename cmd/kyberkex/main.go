package main

import (
	"os"

	"kyberkex/cmd/kyberkex/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
