// Package main provides the entry point for the polint CLI.
package main

import (
	"os"

	"github.com/l10nkit/polint/cmd/polint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
