// Package shape provides the built-in shape values understood by ShapeMesh:
// squares, circles, and triangles.
//
// Shapes are immutable value types. Constructors validate that every
// dimension is a non-negative, finite number and return a ValidationError
// otherwise. The *FromParams constructors additionally accept loosely typed
// parameter maps, as produced by decoding JSON, and check presence and type
// of each field before delegating to the typed constructor.
//
// The set of shapes is open. Any type implementing core.Shape participates in
// dispatch on equal footing with the shapes defined here; this package is a
// convenience, not a boundary.
package shape
