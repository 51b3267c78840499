package main

import (
	"os"

	"wordcalc/cmd/wordcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
