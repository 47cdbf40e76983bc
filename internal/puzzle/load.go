package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edouardmenayde/rush-hour/internal/model"
)

// Format selects the input syntax of a puzzle.
type Format string

const (
	// FormatAuto picks FormatJSONC for .json/.jsonc paths and FormatText otherwise.
	FormatAuto Format = "auto"

	// FormatText is the line-oriented "x y orientation length" syntax.
	FormatText Format = "text"

	// FormatJSONC is the {"cars": [...]} document syntax.
	FormatJSONC Format = "jsonc"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatAuto, FormatText, FormatJSONC:
		return f, nil
	default:
		return "", fmt.Errorf("invalid puzzle format: %q (valid: auto, text, jsonc)", s)
	}
}

// DetectFormat resolves FormatAuto from a file name. Stdin ("-") and any
// other extension resolve to FormatText.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSONC
	default:
		return FormatText
	}
}

// Decode parses data in the given format. FormatAuto decodes as text.
func Decode(data []byte, format Format, opts ParseOptions) (*Puzzle, error) {
	if format == FormatJSONC {
		return DecodeJSONC(data, opts)
	}
	return ParseString(string(data), opts)
}

// LoadFile reads and parses the puzzle at path. It also returns the raw
// file content so callers can echo it.
//
// A missing file is reported as a CLIError with ExitPuzzleNotFound, and a
// parse failure as a CLIError with ExitMalformedPuzzle wrapping the
// underlying *LineError.
func LoadFile(path string, format Format, opts ParseOptions) (*Puzzle, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, model.WrapCLIError(
				model.ExitPuzzleNotFound,
				fmt.Sprintf("puzzle file not found: %s", path),
				err,
			)
		}
		return nil, nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	p, err := Decode(data, format, opts)
	if err != nil {
		return nil, nil, model.WrapCLIError(
			model.ExitMalformedPuzzle,
			fmt.Sprintf("puzzle file is malformed: %s", path),
			err,
		)
	}
	return p, data, nil
}
