package main

import (
	"os"

	"tickerpick/cmd/tickerpick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
