package main

import (
	"os"

	"github.com/AndreCode112/FinanceMartins/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
