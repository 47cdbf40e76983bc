package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine means a data line did not split into exactly four fields.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidNumber means x, y or length is not an unsigned 8-bit integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnknownOrientation means an orientation word other than
	// "horizontal" or "vertical" was found in strict mode.
	ErrUnknownOrientation = errors.New("unknown orientation")

	// ErrEmptyCar means a car of length zero was found in strict mode.
	ErrEmptyCar = errors.New("car length must be at least 1")

	// ErrInvalidDocument means a JSONC puzzle could not be decoded.
	ErrInvalidDocument = errors.New("invalid puzzle document")
)

// LineError reports the input line a parse failure happened on.
type LineError struct {
	// Line is the 1-based line number, counting comment lines.
	Line int

	// Text is the raw line as read, without its line terminator.
	Text string

	// Err is the cause; errors.Is matches it against the sentinels above.
	Err error
}

// Error satisfies the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the cause for use with errors.Is/errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}
