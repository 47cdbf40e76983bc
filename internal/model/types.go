package model

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of the board in cells. Only 6x6 boards
// exist.
const BoardSize = 6

// Orientation is the axis along which a car occupies cells.
//
// Parsing is permissive: ParseOrientation maps the word "vertical" to
// Vertical and every other word, typos included, to Horizontal. Callers that
// want unknown words rejected use ParseOrientationStrict instead.
type Orientation string

const (
	// Horizontal cars occupy cells along increasing x.
	Horizontal Orientation = "horizontal"

	// Vertical cars occupy cells along increasing y.
	Vertical Orientation = "vertical"
)

// String returns the string representation of Orientation.
func (o Orientation) String() string {
	return string(o)
}

// IsValid checks whether the Orientation value is one of the two defined
// axes.
func (o Orientation) IsValid() bool {
	switch o {
	case Horizontal, Vertical:
		return true
	default:
		return false
	}
}

// ParseOrientation converts a puzzle file word to an Orientation.
// Only the exact, case-sensitive word "vertical" yields Vertical; anything
// else falls back to Horizontal. It never fails.
func ParseOrientation(s string) Orientation {
	if s == string(Vertical) {
		return Vertical
	}
	return Horizontal
}

// ParseOrientationStrict converts a puzzle file word to an Orientation,
// accepting only the exact words "horizontal" and "vertical".
func ParseOrientationStrict(s string) (Orientation, error) {
	o := Orientation(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid orientation: %q (valid: horizontal, vertical)", s)
	}
	return o, nil
}

// Car is a single puzzle piece.
//
// A car occupies a contiguous run of Length cells starting at (X, Y). The
// run extends towards +x for Horizontal cars and towards +y for Vertical
// ones. Cars have no identity beyond their fields.
type Car struct {
	// X is the column of the left-most (or only) occupied cell.
	X uint8 `json:"x"`

	// Y is the row of the top-most (or only) occupied cell.
	Y uint8 `json:"y"`

	// Length is the number of cells occupied along the orientation axis.
	Length uint8 `json:"length"`

	// Orientation selects the axis the car extends along.
	Orientation Orientation `json:"orientation"`
}

// Occupies reports whether the car covers cell (x, y).
//
// The end of the run is computed in uint16 so that a car near the top of
// the uint8 range cannot wrap around.
func (c Car) Occupies(x, y uint8) bool {
	if c.Orientation == Vertical {
		return x == c.X && inRun(y, c.Y, c.Length)
	}
	return y == c.Y && inRun(x, c.X, c.Length)
}

// inRun reports whether v lies in the half-open range [start, start+length).
func inRun(v, start, length uint8) bool {
	return v >= start && uint16(v) < uint16(start)+uint16(length)
}

// Cells returns every cell the car covers, in order along its axis.
// Cells outside the board are included; clipping is the renderer's job.
func (c Car) Cells() [][2]int {
	cells := make([][2]int, 0, c.Length)
	for i := 0; i < int(c.Length); i++ {
		if c.Orientation == Vertical {
			cells = append(cells, [2]int{int(c.X), int(c.Y) + i})
		} else {
			cells = append(cells, [2]int{int(c.X) + i, int(c.Y)})
		}
	}
	return cells
}

// String returns the car in puzzle file syntax: "x y orientation length".
func (c Car) String() string {
	return fmt.Sprintf("%d %d %s %d", c.X, c.Y, c.Orientation, c.Length)
}

// FormatCells renders a car's covered cells as "(x,y) (x,y) ...".
// An empty car (Length 0) yields "-".
func FormatCells(c Car) string {
	cells := c.Cells()
	if len(cells) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		parts = append(parts, fmt.Sprintf("(%d,%d)", cell[0], cell[1]))
	}
	return strings.Join(parts, " ")
}
