package core

// Registry is the shared structure holding every (measure, kind) -> MeasureFunc
// binding. Implementations must be safe for concurrent use: registration and
// dispatch are allowed to interleave across goroutines.
//
// Registration is deliberately decoupled from the definition sites of both
// shapes and measures: a consumer holding only a Measure tag and a Kind can
// bind an implementation from anywhere, at any time before first use. This is
// what lets third parties add shapes to first-party measures and measures to
// first-party shapes without touching either.
//
// A Registry never retains shapes; it stores implementation functions only.
type Registry interface {
	// Register binds fn as the implementation for the (measure, kind) pair.
	// Registering a pair that already has an implementation overwrites it:
	// last registration wins. Overwriting is not an error; empty tags or a
	// nil implementation are.
	Register(measure Measure, kind Kind, fn MeasureFunc) error

	// Lookup returns the implementation registered for the exact
	// (measure, kind) pair, with ok reporting whether one exists. There is
	// no fallback across kinds or across measures: a miss on the pair is a
	// miss.
	Lookup(measure Measure, kind Kind) (MeasureFunc, bool)

	// Table returns the per-measure implementation table, with ok reporting
	// whether the measure has ever been registered. Tables are created
	// lazily by the first Register call naming their measure and live for
	// the rest of the process.
	Table(measure Measure) (Table, bool)

	// Measures lists every measure that currently owns a table, in
	// unspecified order.
	Measures() []Measure
}

// Table is a read-only view of the implementations registered for a single
// measure. Dispatch resolves in two steps: first the measure's Table within
// the Registry, then the shape's kind within that Table.
type Table interface {
	// Measure returns the tag this table belongs to.
	Measure() Measure

	// Lookup returns the implementation for a shape kind, with ok reporting
	// whether the kind is covered. A known measure with an uncovered kind is
	// a valid, detectable state, not a programming error.
	Lookup(kind Kind) (MeasureFunc, bool)

	// Kinds lists the covered shape kinds in unspecified order.
	Kinds() []Kind

	// Len returns the number of registered implementations.
	Len() int
}
