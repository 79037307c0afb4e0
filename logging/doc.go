// Package logging provides a minimal logging interface and adapters for
// ShapeMesh.
//
// The core abstraction is the Logger interface, which downstream packages
// depend on instead of a concrete logging backend. A SlogAdapter bridges the
// interface to the standard library's log/slog, and NoOpLogger discards all
// output for tests and silent operation.
//
// On top of the plain interface, ShapeMeshLogger adds contextual structure:
// component names, calculation correlation IDs, and helpers that record
// dispatches and registrations with consistent attributes. Loggers are cloned
// by the With* methods, so enriching context never mutates a shared logger.
package logging
