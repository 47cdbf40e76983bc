// Package cli implements the cobra-based CLI commands for rush-hour.
//
// Each subcommand (render, cars, serve) is defined in its own file within
// this package. This file defines the root command that serves as the parent
// for all subcommands, handles global flags, and loads the configuration
// before any subcommand runs.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edouardmenayde/rush-hour/internal/config"
	"github.com/edouardmenayde/rush-hour/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath is the --config value; empty means config.DefaultFile.
	configPath string
)

// cfg is the configuration loaded by the root command's PersistentPreRunE.
// Subcommands read it once their own RunE starts.
var cfg = config.Default()

// logger is the CLI-wide logger. It writes to the command's stderr.
var logger = logrus.New()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action. It provides help
// text and global flags; rendering is done by the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rush-hour",
		Short: "Render Rush Hour puzzle boards",
		Long: `rush-hour reads a Rush Hour puzzle definition and draws the 6x6 board.

A puzzle file lists one car per line as "<x> <y> <horizontal|vertical> <length>";
lines starting with '#' are comments. JSONC documents ({"cars": [...]}) are
accepted too.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them (text or JSON based on --json).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultFile+")")

	rootCmd.AddCommand(NewRenderCommand())
	rootCmd.AddCommand(NewCarsCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// setup configures logging and loads the configuration. It runs before
// every subcommand.
func setup(cmd *cobra.Command) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if err := config.LoadEnv(); err != nil {
		logger.Warnf("%v", err)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	cfg = loaded

	VerboseLog("Loaded configuration (puzzle: %s, puzzle_dir: %s)", cfg.Puzzle, cfg.PuzzleDir)
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(reportError(err)))
	}
}

// reportError prints err and returns the exit code it maps to.
func reportError(err error) model.ExitCode {
	if cliErr, ok := err.(*model.CLIError); ok {
		printError(cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError(err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog logs a debug message. It is only shown when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
