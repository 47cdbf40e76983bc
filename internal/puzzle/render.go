package puzzle

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edouardmenayde/rush-hour/internal/model"
)

const (
	// border is the top and bottom frame line of a rendered board.
	border = "|------|"

	// bottomPad follows the bottom border in the reference output.
	bottomPad = " "

	occupiedCell = "x"
	emptyCell    = " "
)

// carStyle colours occupied cells when RenderOptions.Color is set.
// lipgloss drops the escape codes on terminals without colour support.
var carStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))

// RenderOptions tweaks the board output. The zero value reproduces the
// reference output byte for byte.
type RenderOptions struct {
	// Color styles occupied cells.
	Color bool

	// TrimBorderSpace drops the single space after the bottom border.
	TrimBorderSpace bool
}

// Occupied reports whether any car covers cell (x, y).
func (p *Puzzle) Occupied(x, y uint8) bool {
	for _, c := range p.cars {
		if c.Occupies(x, y) {
			return true
		}
	}
	return false
}

// Rows returns the board interior, one string of model.BoardSize cells per
// row from top to bottom, without the '|' frame.
func (p *Puzzle) Rows() []string {
	rows := make([]string, 0, model.BoardSize)
	for y := uint8(0); y < model.BoardSize; y++ {
		var b strings.Builder
		for x := uint8(0); x < model.BoardSize; x++ {
			if p.Occupied(x, y) {
				b.WriteString(occupiedCell)
			} else {
				b.WriteString(emptyCell)
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render draws the board:
//
//	|------|
//	| x    |
//	|xxx   |
//	...
//	|------|
//
// Rendering the same puzzle twice yields identical output.
func (p *Puzzle) Render(opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(border)
	b.WriteByte('\n')
	for y := uint8(0); y < model.BoardSize; y++ {
		b.WriteByte('|')
		for x := uint8(0); x < model.BoardSize; x++ {
			switch {
			case !p.Occupied(x, y):
				b.WriteString(emptyCell)
			case opts.Color:
				b.WriteString(carStyle.Render(occupiedCell))
			default:
				b.WriteString(occupiedCell)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	if !opts.TrimBorderSpace {
		b.WriteString(bottomPad)
	}

	return b.String()
}

// String renders the board with default options.
func (p *Puzzle) String() string {
	return p.Render(RenderOptions{})
}

// View is the JSON shape of a rendered puzzle.
type View struct {
	Cars  []model.Car `json:"cars"`
	Board []string    `json:"board"`
}

// View returns the cars and board rows of the puzzle for JSON output.
func (p *Puzzle) View() View {
	cars := make([]model.Car, 0, len(p.cars))
	cars = append(cars, p.cars...)
	return View{Cars: cars, Board: p.Rows()}
}
