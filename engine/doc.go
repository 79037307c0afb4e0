// Package engine implements the dispatch core of ShapeMesh.
//
// The Engine resolves the implementation registered for a (measure, shape
// kind) pair and executes it, turning an open registry of plain functions
// into a calculation surface with uniform error reporting.
//
// # Dispatch Pipeline
//
// Every calculation runs the same pipeline:
//
//	Calculate(measure, shape)
//	    ├── validate shape          -> INVALID_SHAPE on bad dimensions
//	    ├── resolve measure table   -> UNKNOWN_MEASURE on miss
//	    ├── resolve shape kind      -> UNSUPPORTED_SHAPE on miss
//	    └── invoke implementation   -> EXECUTION_ERROR on failure or panic
//
// Both resolution steps are exact matches against the registry. There is no
// fallback between kinds and no catch-all implementation; the failure codes
// tell callers precisely which level missed.
//
// # Key Components
//
// Configuration:
//   - Tunable validation, panic recovery, and statistics collection
//   - Production-ready defaults with functional options for overrides
//
// Callback System:
//   - Hooks before and after calculations, on errors, and on registration
//   - Built-in implementations for logging and result validation
//
// Statistics:
//   - Per-measure dispatch counters exposed as point-in-time snapshots
//
// # Concurrency Model
//
// The engine is stateless apart from its registry and counters. Registration
// and dispatch are safe to interleave from concurrent goroutines; a dispatch
// sees the registry as it was at its own resolution instant.
package engine
