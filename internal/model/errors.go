package model

import "fmt"

// ExitCode defines the CLI exit codes. Scripts can use them to tell a
// missing file apart from a malformed one.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitPuzzleNotFound indicates the puzzle file does not exist.
	ExitPuzzleNotFound ExitCode = 2

	// ExitMalformedPuzzle indicates the puzzle file could not be parsed.
	// No board is rendered in this case.
	ExitMalformedPuzzle ExitCode = 3

	// ExitConfigError indicates the configuration file is missing or invalid.
	ExitConfigError ExitCode = 4

	// ExitServerError indicates the HTTP server failed to start or stop.
	ExitServerError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
