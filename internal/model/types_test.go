package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrientation_String verifies that Orientation values produce the words
// used in puzzle files and JSON output.
func TestOrientation_String(t *testing.T) {
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
}

// TestOrientation_IsValid checks that only the two axes pass validation.
func TestOrientation_IsValid(t *testing.T) {
	assert.True(t, Horizontal.IsValid())
	assert.True(t, Vertical.IsValid())
	assert.False(t, Orientation("diagonal").IsValid())
	assert.False(t, Orientation("").IsValid())
}

// TestParseOrientation verifies the permissive mapping: only the exact word
// "vertical" is Vertical.
func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input    string
		expected Orientation
	}{
		{"vertical", Vertical},
		{"horizontal", Horizontal},
		{"Vertical", Horizontal}, // case sensitive
		{"verticle", Horizontal}, // typo
		{"", Horizontal},         // empty word
		{"sideways", Horizontal}, // unknown word
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseOrientation(tt.input))
		})
	}
}

// TestParseOrientationStrict verifies that strict parsing rejects anything
// but the two exact words.
func TestParseOrientationStrict(t *testing.T) {
	tests := []struct {
		input    string
		expected Orientation
		hasError bool
	}{
		{"vertical", Vertical, false},
		{"horizontal", Horizontal, false},
		{"Vertical", "", true},
		{"verticle", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOrientationStrict(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// --- Car.Occupies tests ---

// TestCar_Occupies_Horizontal checks every cell of the board against a
// horizontal car: only the run on its row is covered.
func TestCar_Occupies_Horizontal(t *testing.T) {
	car := Car{X: 0, Y: 1, Length: 3, Orientation: Horizontal}

	for y := uint8(0); y < BoardSize; y++ {
		for x := uint8(0); x < BoardSize; x++ {
			want := y == 1 && x < 3
			assert.Equal(t, want, car.Occupies(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestCar_Occupies_Vertical checks every cell of the board against a
// vertical car: only the run on its column is covered.
func TestCar_Occupies_Vertical(t *testing.T) {
	car := Car{X: 1, Y: 0, Length: 3, Orientation: Vertical}

	for y := uint8(0); y < BoardSize; y++ {
		for x := uint8(0); x < BoardSize; x++ {
			want := x == 1 && y < 3
			assert.Equal(t, want, car.Occupies(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestCar_Occupies_LengthOne verifies that a one-cell car covers exactly its
// own cell whatever its orientation.
func TestCar_Occupies_LengthOne(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		t.Run(o.String(), func(t *testing.T) {
			car := Car{X: 3, Y: 4, Length: 1, Orientation: o}
			covered := 0
			for y := uint8(0); y < BoardSize; y++ {
				for x := uint8(0); x < BoardSize; x++ {
					if car.Occupies(x, y) {
						covered++
					}
				}
			}
			assert.Equal(t, 1, covered)
			assert.True(t, car.Occupies(3, 4))
		})
	}
}

// TestCar_Occupies_NoOverflow verifies that a run ending past 255 does not
// wrap around to low coordinates.
func TestCar_Occupies_NoOverflow(t *testing.T) {
	car := Car{X: 250, Y: 0, Length: 10, Orientation: Horizontal}

	assert.True(t, car.Occupies(250, 0))
	assert.True(t, car.Occupies(255, 0))
	assert.False(t, car.Occupies(0, 0))
	assert.False(t, car.Occupies(3, 0))
	assert.False(t, car.Occupies(249, 0))
}

// TestCar_Occupies_ZeroLength verifies that an empty car covers nothing.
func TestCar_Occupies_ZeroLength(t *testing.T) {
	car := Car{X: 2, Y: 2, Length: 0, Orientation: Vertical}
	assert.False(t, car.Occupies(2, 2))
}

// TestCar_Cells verifies the covered cell list and its formatting.
func TestCar_Cells(t *testing.T) {
	tests := []struct {
		name string
		car  Car
		want string
	}{
		{"horizontal", Car{X: 0, Y: 1, Length: 3, Orientation: Horizontal}, "(0,1) (1,1) (2,1)"},
		{"vertical", Car{X: 1, Y: 0, Length: 2, Orientation: Vertical}, "(1,0) (1,1)"},
		{"empty", Car{X: 1, Y: 0, Length: 0, Orientation: Vertical}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCells(tt.car))
			assert.Len(t, tt.car.Cells(), int(tt.car.Length))
		})
	}
}

// TestCar_String verifies the puzzle file syntax round trip of a car.
func TestCar_String(t *testing.T) {
	car := Car{X: 4, Y: 2, Length: 2, Orientation: Vertical}
	assert.Equal(t, "4 2 vertical 2", car.String())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitPuzzleNotFound, "puzzle file not found")
		assert.Equal(t, ExitPuzzleNotFound, err.Code)
		assert.Equal(t, "puzzle file not found", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("line 3: malformed")
		err := WrapCLIError(ExitMalformedPuzzle, "puzzle is malformed", inner)
		assert.Equal(t, ExitMalformedPuzzle, err.Code)
		assert.Contains(t, err.Error(), "line 3: malformed")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("line 3: malformed")
		err := WrapCLIError(ExitMalformedPuzzle, "puzzle is malformed", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
