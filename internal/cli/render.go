// render.go implements the "rush-hour render" command.
//
// The render command reads one puzzle, parses it, and prints the 6x6
// board. A parse failure aborts before anything is printed, so a partial
// board is never shown.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renderFlags holds the flag values for the render command.
type renderFlags struct {
	input inputFlags
	echo  bool // --echo: print the raw puzzle text before the board
	color bool // --color: style occupied cells
	trim  bool // --trim: drop the trailing space after the bottom border
}

// NewRenderCommand creates the "render" cobra command.
func NewRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the board of a puzzle",
		Long: `Parse a puzzle file and draw its 6x6 board.

Without a file argument the configured default puzzle is used.
Use "-" to read the puzzle from stdin.

Examples:
  rush-hour render assets/puzzles/31.txt
  rush-hour render --echo --color assets/puzzles/1.txt
  cat board.jsonc | rush-hour render --format jsonc -
  rush-hour render --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addInputFlags(cmd, &flags.input)
	cmd.Flags().BoolVar(&flags.echo, "echo", false, "Print the raw puzzle text before the board")
	cmd.Flags().BoolVar(&flags.color, "color", false, "Colour occupied cells")
	cmd.Flags().BoolVar(&flags.trim, "trim", false, "Drop the trailing space after the bottom border")

	return cmd
}

// renderResultJSON is the --json output of the render command.
type renderResultJSON struct {
	File  string      `json:"file"`
	Cars  interface{} `json:"cars"`
	Board []string    `json:"board"`
}

// runRender is the main logic function for the render command.
func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	// Step 1: Read and parse the puzzle. Nothing is printed on failure.
	loaded, err := loadPuzzle(cmd, args, &flags.input)
	if err != nil {
		return err
	}

	// Step 2: JSON output carries the parsed cars and the board rows.
	if IsJSONOutput() {
		view := loaded.puzzle.View()
		return printJSON(cmd, renderResultJSON{
			File:  loaded.path,
			Cars:  view.Cars,
			Board: view.Board,
		})
	}

	// Step 3: Text output, optionally preceded by the raw file.
	opts := cfg.RenderOptions()
	opts.Color = opts.Color || flags.color
	opts.TrimBorderSpace = opts.TrimBorderSpace || flags.trim

	out := cmd.OutOrStdout()
	if cfg.Echo || flags.echo {
		fmt.Fprintln(out, string(loaded.raw))
	}
	fmt.Fprintln(out, loaded.puzzle.Render(opts))
	return nil
}
