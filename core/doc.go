// Package core provides the foundational domain types and contracts used by
// ShapeMesh. It defines the core abstractions for:
//
//   - Shapes (tagged geometric variants identified by a Kind)
//   - Measures (named numeric operations computed over shapes)
//   - Registries (two-level measure/kind tables of implementations)
//   - Dispatch errors (typed failures with stable string codes)
//
// The package intentionally keeps implementation concerns (concrete shape
// variants, registry backends, the dispatching engine) out of scope, exposing
// small interfaces to enable custom variants and backends. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
