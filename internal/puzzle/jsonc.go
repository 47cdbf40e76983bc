package puzzle

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/jsonc"

	"github.com/edouardmenayde/rush-hour/internal/model"
)

// rawDocument is the JSONC puzzle layout. Unknown keys are ignored.
type rawDocument struct {
	Cars []rawCar `json:"cars"`
}

// rawCar holds one car before range checking. Numbers are decoded as int64
// so that negative or oversized values can be reported instead of wrapping.
type rawCar struct {
	X           int64  `json:"x"`
	Y           int64  `json:"y"`
	Orientation string `json:"orientation"`
	Length      int64  `json:"length"`
}

// DecodeJSONC parses a JSONC puzzle document:
//
//	{
//	  // comments and trailing commas are allowed
//	  "cars": [
//	    {"x": 0, "y": 1, "orientation": "horizontal", "length": 3},
//	  ]
//	}
//
// The orientation rule and strict mode match the line format.
func DecodeJSONC(data []byte, opts ParseOptions) (*Puzzle, error) {
	// Strip JSONC comments (// and /* */) and trailing commas before parsing.
	cleanJSON := jsonc.ToJSON(data)

	var doc rawDocument
	if err := json.Unmarshal(cleanJSON, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	cars := make([]model.Car, 0, len(doc.Cars))
	for i, rc := range doc.Cars {
		car, err := rc.toCar(opts)
		if err != nil {
			return nil, fmt.Errorf("car %d: %w", i+1, err)
		}
		cars = append(cars, car)
	}

	return &Puzzle{cars: cars}, nil
}

func (rc rawCar) toCar(opts ParseOptions) (model.Car, error) {
	x, err := checkUint8("x", rc.X)
	if err != nil {
		return model.Car{}, err
	}
	y, err := checkUint8("y", rc.Y)
	if err != nil {
		return model.Car{}, err
	}
	orientation, err := parseOrientation(rc.Orientation, opts)
	if err != nil {
		return model.Car{}, err
	}
	length, err := checkUint8("length", rc.Length)
	if err != nil {
		return model.Car{}, err
	}
	if opts.StrictOrientation && length == 0 {
		return model.Car{}, ErrEmptyCar
	}

	return model.Car{X: x, Y: y, Length: length, Orientation: orientation}, nil
}

func checkUint8(field string, v int64) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s %d", ErrInvalidNumber, field, v)
	}
	return uint8(v), nil
}
