package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cfgsplit/cmd/cfgsplit"
	"github.com/arthur-debert/cfgsplit/internal/version"
)

func main() {
	rootCmd := cfgsplit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CFGSPLIT",
		Section: "1",
		Source:  "cfgsplit " + version.Version,
		Manual:  "cfgsplit manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
