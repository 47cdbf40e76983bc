// Package main is the entry point for the rush-hour CLI.
//
// This binary parses Rush Hour puzzle definitions and renders their boards.
// It delegates all functionality to the internal/cli package, which defines
// the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development they default to "dev", "none", and "unknown".
package main

import (
	"github.com/edouardmenayde/rush-hour/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
