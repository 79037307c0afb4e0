package core

// Kind identifies a shape variant ("square", "circle", ...). The set of kinds
// is open: any package may introduce a new variant by defining a type that
// implements Shape and returns a kind of its choosing. Kinds must be unique
// within a process; two variants sharing a kind silently share registrations,
// so pick distinctive names for third-party variants.
type Kind string

// Shape is the capability contract every geometric variant implements. The
// single Kind accessor lets registries and the engine route a value without
// inspecting its concrete type, which is what keeps the variant set open:
// downstream modules add shapes without touching existing measure code, and
// measure code never enumerates variants.
//
// Implementations should be immutable value types: construct them through
// validating constructors and do not mutate their fields afterwards. All
// dimension fields must be non-negative and finite.
type Shape interface {
	// Kind returns the stable identifier for this variant.
	Kind() Kind
}
