// cars.go implements the "rush-hour cars" command.
//
// The cars command lists every car of a puzzle in input order, with the
// cells it covers, as a text table or a JSON array.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edouardmenayde/rush-hour/internal/model"
)

// NewCarsCommand creates the "cars" cobra command.
func NewCarsCommand() *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "cars [file]",
		Short: "List the cars of a puzzle",
		Long: `List the cars of a puzzle in input order.

Each car is shown with its position, orientation, length and the cells it
covers. Cells outside the 6x6 board are listed too.

Examples:
  rush-hour cars assets/puzzles/31.txt
  rush-hour cars --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCars(cmd, args, flags)
		},
	}

	addInputFlags(cmd, flags)
	return cmd
}

// carJSON is the JSON output structure for a single car.
type carJSON struct {
	Index       int      `json:"index"`
	X           uint8    `json:"x"`
	Y           uint8    `json:"y"`
	Orientation string   `json:"orientation"`
	Length      uint8    `json:"length"`
	Cells       [][2]int `json:"cells"`
}

func runCars(cmd *cobra.Command, args []string, flags *inputFlags) error {
	loaded, err := loadPuzzle(cmd, args, flags)
	if err != nil {
		return err
	}

	cars := loaded.puzzle.Cars()
	if IsJSONOutput() {
		return printCarsJSON(cmd, cars)
	}
	printCarsText(cmd.OutOrStdout(), cars)
	return nil
}

// printCarsJSON outputs the cars under a top-level "cars" key.
func printCarsJSON(cmd *cobra.Command, cars []model.Car) error {
	type resultJSON struct {
		Cars []carJSON `json:"cars"`
	}

	result := resultJSON{
		// An empty slice keeps the output as [] instead of null.
		Cars: make([]carJSON, 0, len(cars)),
	}
	for i, c := range cars {
		result.Cars = append(result.Cars, carJSON{
			Index:       i + 1,
			X:           c.X,
			Y:           c.Y,
			Orientation: c.Orientation.String(),
			Length:      c.Length,
			Cells:       c.Cells(),
		})
	}
	return printJSON(cmd, result)
}

// printCarsText outputs the cars as a table with aligned columns:
//
//	#    X    Y    ORIENTATION  LENGTH  CELLS
//	1    0    1    horizontal   3       (0,1) (1,1) (2,1)
//	2    1    0    vertical     3       (1,0) (1,1) (1,2)
func printCarsText(w io.Writer, cars []model.Car) {
	if len(cars) == 0 {
		fmt.Fprintln(w, "No cars found.")
		return
	}

	fmt.Fprintf(w, "%-4s %-4s %-4s %-12s %-7s %s\n",
		"#", "X", "Y", "ORIENTATION", "LENGTH", "CELLS")

	for i, c := range cars {
		fmt.Fprintf(w, "%-4d %-4d %-4d %-12s %-7d %s\n",
			i+1,
			c.X,
			c.Y,
			c.Orientation.String(),
			c.Length,
			model.FormatCells(c),
		)
	}
}
