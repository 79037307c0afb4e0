// Package measure defines the built-in measures (area, perimeter) and their
// implementations for the built-in shapes.
//
// A measure has no behavior of its own. It is a tag plus a dispatch table,
// and the functions in this package are ordinary core.MeasureFunc values that
// could just as well live in third-party code. RegisterDefaults wires the
// shipped implementations into a registry; callers are free to register a
// subset, override single entries, or add implementations for their own
// shapes and measures.
//
// Perimeter is deliberately not implemented for triangles: a Triangle carries
// base and height, which determine its area but not its side lengths. The
// gap is visible at dispatch time as an unsupported-shape error, not hidden
// behind a guess.
package measure
