package measure

import (
	"fmt"
	"math"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/shape"
)

// Built-in measure tags. These are ordinary core.Measure values; consumers
// can dispatch third-party shapes under them or define tags of their own.
const (
	// Area is the surface area of a shape.
	Area = core.Measure("area")
	// Perimeter is the length of a shape's outline.
	Perimeter = core.Measure("perimeter")
)

// squareArea computes side squared.
func squareArea(s core.Shape) (float64, error) {
	sq, ok := s.(shape.Square)
	if !ok {
		return 0, fmt.Errorf("square area: unexpected shape type %T", s)
	}
	return sq.Side * sq.Side, nil
}

// circleArea computes pi times radius squared.
func circleArea(s core.Shape) (float64, error) {
	c, ok := s.(shape.Circle)
	if !ok {
		return 0, fmt.Errorf("circle area: unexpected shape type %T", s)
	}
	return math.Pi * c.Radius * c.Radius, nil
}

// triangleArea computes half of base times height.
func triangleArea(s core.Shape) (float64, error) {
	tr, ok := s.(shape.Triangle)
	if !ok {
		return 0, fmt.Errorf("triangle area: unexpected shape type %T", s)
	}
	return 0.5 * tr.Base * tr.Height, nil
}

// squarePerimeter computes four times the side.
func squarePerimeter(s core.Shape) (float64, error) {
	sq, ok := s.(shape.Square)
	if !ok {
		return 0, fmt.Errorf("square perimeter: unexpected shape type %T", s)
	}
	return 4 * sq.Side, nil
}

// circlePerimeter computes the circumference, two pi times the radius.
func circlePerimeter(s core.Shape) (float64, error) {
	c, ok := s.(shape.Circle)
	if !ok {
		return 0, fmt.Errorf("circle perimeter: unexpected shape type %T", s)
	}
	return 2 * math.Pi * c.Radius, nil
}

// RegisterArea binds the built-in area implementations for squares, circles,
// and triangles into r.
func RegisterArea(r core.Registry) error {
	impls := map[core.Kind]core.MeasureFunc{
		shape.KindSquare:   squareArea,
		shape.KindCircle:   circleArea,
		shape.KindTriangle: triangleArea,
	}
	for kind, fn := range impls {
		if err := r.Register(Area, kind, fn); err != nil {
			return fmt.Errorf("failed to register %s/%s: %w", Area, kind, err)
		}
	}
	return nil
}

// RegisterPerimeter binds the built-in perimeter implementations for squares
// and circles into r. Triangles stay uncovered, see the package comment.
func RegisterPerimeter(r core.Registry) error {
	impls := map[core.Kind]core.MeasureFunc{
		shape.KindSquare: squarePerimeter,
		shape.KindCircle: circlePerimeter,
	}
	for kind, fn := range impls {
		if err := r.Register(Perimeter, kind, fn); err != nil {
			return fmt.Errorf("failed to register %s/%s: %w", Perimeter, kind, err)
		}
	}
	return nil
}

// RegisterDefaults binds every built-in implementation into r. It is the
// usual starting point before adding custom shapes and measures.
func RegisterDefaults(r core.Registry) error {
	if err := RegisterArea(r); err != nil {
		return err
	}

	return RegisterPerimeter(r)
}
