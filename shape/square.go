package shape

import (
	"fmt"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/util"
)

// KindSquare identifies squares in dispatch tables.
const KindSquare = core.Kind("square")

// Square is a regular quadrilateral described by the length of its side.
// Squares are immutable values; construct a new one instead of mutating.
type Square struct {
	// Side is the side length, a non-negative finite number.
	Side float64 `json:"side"`
}

// NewSquare creates a Square after validating the side length.
func NewSquare(side float64) (Square, error) {
	if err := util.CheckDimension("side", side); err != nil {
		return Square{}, err
	}

	return Square{Side: side}, nil
}

// SquareFromParams creates a Square from a loosely typed parameter map. The
// "side" entry must be present and numeric.
func SquareFromParams(params map[string]any) (Square, error) {
	side, err := util.RequireNumber(params, "side")
	if err != nil {
		return Square{}, err
	}

	return NewSquare(side)
}

// Kind returns the dispatch kind for squares.
func (s Square) Kind() core.Kind { return KindSquare }

// String renders the square for logs and error messages.
func (s Square) String() string { return fmt.Sprintf("square(side=%g)", s.Side) }
