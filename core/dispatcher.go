package core

// Dispatcher is the execution surface of the dispatch mechanism: it resolves
// the implementation registered for a (measure, shape kind) pair and runs it.
//
// Implementations must be safe for concurrent use and must distinguish the
// two resolution levels in their errors: an unknown measure is a different
// failure than a known measure that does not cover the shape's kind.
type Dispatcher interface {
	// Register binds fn as the implementation of measure for shapes of the
	// given kind. Later registrations for the same pair replace earlier ones.
	Register(measure Measure, kind Kind, fn MeasureFunc) error

	// Calculate resolves the implementation for (measure, s.Kind()) and
	// executes it, returning the computed value unchanged.
	//
	// Failures are reported as *DispatchError carrying one of the stable
	// codes:
	//   - INVALID_SHAPE: s is nil or carries invalid dimensions
	//   - UNKNOWN_MEASURE: no implementations exist for the measure
	//   - UNSUPPORTED_SHAPE: the measure exists but not for this kind
	//   - EXECUTION_ERROR: the implementation failed or panicked
	Calculate(measure Measure, s Shape) (float64, error)

	// MeasureAll computes every measure covering s.Kind() and returns the
	// results keyed by measure. Measures that do not cover the kind are
	// skipped, not errors.
	MeasureAll(s Shape) (map[Measure]float64, error)

	// Supports reports whether the exact (measure, kind) pair is
	// dispatchable right now.
	Supports(measure Measure, kind Kind) bool

	// Stats returns a snapshot of dispatch activity. Implementations that do
	// not collect statistics return the zero Stats.
	Stats() Stats
}
