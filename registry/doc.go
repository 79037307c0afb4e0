// Package registry provides implementations of the core.Registry interface
// for binding measure implementations to shape kinds.
//
// InMemoryStore is the default process-local registry: nested maps guarded by
// an RWMutex, with per-measure tables created lazily on first registration.
// It is the right choice for libraries and services that assemble their
// dispatch tables at startup and read them on every calculation.
package registry
