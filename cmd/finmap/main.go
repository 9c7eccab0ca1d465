package main

import (
	"os"

	"github.com/finmap-dev/finmap/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
