package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edouardmenayde/rush-hour/internal/model"
	"github.com/edouardmenayde/rush-hour/internal/puzzle"
)

// stdinPath is the file argument that reads the puzzle from stdin.
const stdinPath = "-"

// inputFlags holds the flags shared by every command that reads a puzzle.
// Boolean flags can only switch a setting on; the config file decides
// otherwise.
type inputFlags struct {
	format    string // --format: auto, text or jsonc
	strict    bool   // --strict: reject unknown orientation words and empty cars
	skipBlank bool   // --skip-blank: treat blank lines as comments
}

// addInputFlags registers the puzzle input flags on cmd.
func addInputFlags(cmd *cobra.Command, f *inputFlags) {
	cmd.Flags().StringVar(&f.format, "format", string(puzzle.FormatAuto), "Input format: auto, text, jsonc")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject unknown orientation words and zero-length cars")
	cmd.Flags().BoolVar(&f.skipBlank, "skip-blank", false, "Skip blank lines instead of rejecting them")
}

// parseOptions merges the flags with the configured parse settings.
func (f *inputFlags) parseOptions() puzzle.ParseOptions {
	opts := cfg.ParseOptions()
	opts.StrictOrientation = opts.StrictOrientation || f.strict
	opts.SkipBlankLines = opts.SkipBlankLines || f.skipBlank
	return opts
}

// loadedPuzzle is a parsed puzzle together with where it came from.
type loadedPuzzle struct {
	path   string
	raw    []byte
	puzzle *puzzle.Puzzle
}

// loadPuzzle resolves the puzzle path (argument or configured default),
// reads it, and parses it. A path of "-" reads from the command's stdin.
func loadPuzzle(cmd *cobra.Command, args []string, f *inputFlags) (*loadedPuzzle, error) {
	format, err := puzzle.ParseFormat(f.format)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "invalid --format value", err)
	}

	path := cfg.Puzzle
	if len(args) > 0 {
		path = args[0]
	}
	opts := f.parseOptions()
	VerboseLog("Reading puzzle from %s (format: %s, strict: %t, skip blank: %t)",
		path, format, opts.StrictOrientation, opts.SkipBlankLines)

	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "failed to read stdin", err)
		}
		p, err := puzzle.Decode(data, format, opts)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitMalformedPuzzle, "puzzle input is malformed: stdin", err)
		}
		return &loadedPuzzle{path: path, raw: data, puzzle: p}, nil
	}

	p, raw, err := puzzle.LoadFile(path, format, opts)
	if err != nil {
		return nil, err
	}
	VerboseLog("Parsed %d cars", p.Len())
	return &loadedPuzzle{path: path, raw: raw, puzzle: p}, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
