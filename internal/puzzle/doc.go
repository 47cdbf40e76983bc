// Package puzzle parses Rush Hour puzzle definitions and renders them as
// bordered text boards.
//
// A puzzle file is line oriented. Lines starting with '#' are comments;
// every other line describes one car as four whitespace-separated fields:
//
//	<x> <y> <horizontal|vertical> <length>
//
// Parsing is all-or-nothing: the first bad line aborts the parse with a
// *LineError and no Puzzle is returned. Rendering never fails. Cars may
// overlap or reach outside the 6x6 board; occupancy is OR-ed per cell and
// clipped to the board.
//
// A JSONC document ({"cars": [...]}) is accepted as an alternative input
// format, see DecodeJSONC.
package puzzle
