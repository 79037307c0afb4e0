package shape

import (
	"fmt"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/util"
)

// ValidationError represents dimension validation errors with detailed information.
type ValidationError = util.ValidationError

// Kinds lists the built-in shape kinds in a stable order.
func Kinds() []core.Kind {
	return []core.Kind{KindSquare, KindCircle, KindTriangle}
}

// FromParams builds one of the built-in shapes from a loosely typed parameter
// map. It only knows the kinds shipped with this package; custom shapes are
// built by their own constructors and dispatch identically.
func FromParams(kind core.Kind, params map[string]any) (core.Shape, error) {
	switch kind {
	case KindSquare:
		sq, err := SquareFromParams(params)
		if err != nil {
			return nil, err
		}

		return sq, nil
	case KindCircle:
		c, err := CircleFromParams(params)
		if err != nil {
			return nil, err
		}

		return c, nil
	case KindTriangle:
		tr, err := TriangleFromParams(params)
		if err != nil {
			return nil, err
		}

		return tr, nil
	default:
		return nil, fmt.Errorf("unknown shape kind: %s", kind)
	}
}
