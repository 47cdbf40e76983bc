// Package model defines the domain types and value objects for the
// rush-hour CLI.
//
// This package contains pure data structures with no external dependencies.
// A Car is a single puzzle piece on the 6x6 board; it is built once while
// parsing a puzzle file and never mutated afterwards.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
