package core

// Measure identifies a named numeric operation over shapes ("area",
// "perimeter", ...). Like Kind the set is open: any package can introduce a
// new measure tag and register implementations for it, including against
// shape kinds it does not own.
type Measure string

// MeasureFunc computes one measure for one shape. Implementations are
// registered per (measure, kind) pair and may therefore assume the concrete
// variant behind the Shape; they should still reject an unexpected concrete
// type with an error rather than panic. Implementations must be pure
// functions of the shape's dimensions, without retained state or side
// effects. The dispatcher returns the result unchanged (no rounding, no
// unit conversion).
type MeasureFunc func(s Shape) (float64, error)
