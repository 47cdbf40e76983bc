package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/edouardmenayde/rush-hour/internal/model"
)

// fieldsPerLine is the number of whitespace-separated fields on a data line.
const fieldsPerLine = 4

// ParseOptions tweaks the line format. The zero value is the reference
// behavior and is what every caller gets unless configured otherwise.
type ParseOptions struct {
	// StrictOrientation rejects orientation words other than "horizontal"
	// and "vertical", and rejects cars of length zero.
	StrictOrientation bool

	// SkipBlankLines treats whitespace-only lines as comments. When false,
	// a blank line has zero fields and is a malformed line.
	SkipBlankLines bool
}

// Puzzle is a parsed board: the cars in input order.
// It is never mutated after construction.
type Puzzle struct {
	cars []model.Car
}

// New builds a Puzzle from the given cars. The slice is copied.
func New(cars ...model.Car) *Puzzle {
	return &Puzzle{cars: append([]model.Car(nil), cars...)}
}

// Cars returns a copy of the cars in input order.
func (p *Puzzle) Cars() []model.Car {
	return append([]model.Car(nil), p.cars...)
}

// Len returns the number of cars.
func (p *Puzzle) Len() int {
	return len(p.cars)
}

// Parse consumes lines once and builds a Puzzle from them.
//
// Lines whose first character is '#' are skipped. Every other line must
// hold exactly four fields; the first line that does not, or whose numbers
// do not parse, stops the parse and is reported as a *LineError.
func Parse(lines iter.Seq[string], opts ParseOptions) (*Puzzle, error) {
	var cars []model.Car

	n := 0
	for line := range lines {
		n++
		if strings.HasPrefix(line, "#") {
			continue
		}
		if opts.SkipBlankLines && strings.TrimSpace(line) == "" {
			continue
		}

		car, err := parseCar(line, opts)
		if err != nil {
			return nil, &LineError{Line: n, Text: line, Err: err}
		}
		cars = append(cars, car)
	}

	return &Puzzle{cars: cars}, nil
}

// maxLineBytes bounds a single input line, comments included.
const maxLineBytes = 16 << 20

// ParseReader parses a puzzle from r, one line per record. Both "\n" and
// "\r\n" terminators are accepted.
func ParseReader(r io.Reader, opts ParseOptions) (*Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	lines := func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}

	p, err := Parse(lines, opts)
	if err != nil {
		return nil, err
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}
	return p, nil
}

// ParseString parses a puzzle held in memory.
func ParseString(s string, opts ParseOptions) (*Puzzle, error) {
	return ParseReader(strings.NewReader(s), opts)
}

// parseCar turns one data line into a Car.
func parseCar(line string, opts ParseOptions) (model.Car, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerLine {
		return model.Car{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, fieldsPerLine, len(fields))
	}

	x, err := parseUint8("x", fields[0])
	if err != nil {
		return model.Car{}, err
	}
	y, err := parseUint8("y", fields[1])
	if err != nil {
		return model.Car{}, err
	}
	orientation, err := parseOrientation(fields[2], opts)
	if err != nil {
		return model.Car{}, err
	}
	length, err := parseUint8("length", fields[3])
	if err != nil {
		return model.Car{}, err
	}
	if opts.StrictOrientation && length == 0 {
		return model.Car{}, ErrEmptyCar
	}

	return model.Car{X: x, Y: y, Length: length, Orientation: orientation}, nil
}

// parseUint8 accepts an optional single leading '+'.
func parseUint8(field, s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, field, s)
	}
	return uint8(v), nil
}

func parseOrientation(word string, opts ParseOptions) (model.Orientation, error) {
	if !opts.StrictOrientation {
		return model.ParseOrientation(word), nil
	}
	o, err := model.ParseOrientationStrict(word)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, word)
	}
	return o, nil
}
