package shape

import (
	"fmt"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/util"
)

// KindTriangle identifies triangles in dispatch tables.
const KindTriangle = core.Kind("triangle")

// Triangle is described by its base and height. These two dimensions
// determine the area but not the side lengths, so a perimeter cannot be
// derived from a Triangle value. Triangles are immutable values.
type Triangle struct {
	// Base is the base length, a non-negative finite number.
	Base float64 `json:"base"`
	// Height is the height over the base, a non-negative finite number.
	Height float64 `json:"height"`
}

// NewTriangle creates a Triangle after validating base and height.
func NewTriangle(base, height float64) (Triangle, error) {
	if err := util.CheckDimension("base", base); err != nil {
		return Triangle{}, err
	}

	if err := util.CheckDimension("height", height); err != nil {
		return Triangle{}, err
	}

	return Triangle{Base: base, Height: height}, nil
}

// TriangleFromParams creates a Triangle from a loosely typed parameter map.
// The "base" and "height" entries must be present and numeric.
func TriangleFromParams(params map[string]any) (Triangle, error) {
	base, err := util.RequireNumber(params, "base")
	if err != nil {
		return Triangle{}, err
	}

	height, err := util.RequireNumber(params, "height")
	if err != nil {
		return Triangle{}, err
	}

	return NewTriangle(base, height)
}

// Kind returns the dispatch kind for triangles.
func (t Triangle) Kind() core.Kind { return KindTriangle }

// String renders the triangle for logs and error messages.
func (t Triangle) String() string {
	return fmt.Sprintf("triangle(base=%g, height=%g)", t.Base, t.Height)
}
