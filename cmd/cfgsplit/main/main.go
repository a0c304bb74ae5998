package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/cfgsplit/cmd/cfgsplit"
)

func main() {
	rootCmd := cfgsplit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Red(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
