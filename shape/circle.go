package shape

import (
	"fmt"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/util"
)

// KindCircle identifies circles in dispatch tables.
const KindCircle = core.Kind("circle")

// Circle is described by its radius. Circles are immutable values.
type Circle struct {
	// Radius is a non-negative finite number.
	Radius float64 `json:"radius"`
}

// NewCircle creates a Circle after validating the radius.
func NewCircle(radius float64) (Circle, error) {
	if err := util.CheckDimension("radius", radius); err != nil {
		return Circle{}, err
	}

	return Circle{Radius: radius}, nil
}

// CircleFromParams creates a Circle from a loosely typed parameter map. The
// "radius" entry must be present and numeric.
func CircleFromParams(params map[string]any) (Circle, error) {
	radius, err := util.RequireNumber(params, "radius")
	if err != nil {
		return Circle{}, err
	}

	return NewCircle(radius)
}

// Kind returns the dispatch kind for circles.
func (c Circle) Kind() core.Kind { return KindCircle }

// String renders the circle for logs and error messages.
func (c Circle) String() string { return fmt.Sprintf("circle(radius=%g)", c.Radius) }
