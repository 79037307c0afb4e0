package testutil

import (
	"fmt"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/registry"
)

// RegistryBuilder provides a fluent helper for assembling dispatch tables in
// tests. Example:
//
//	r := NewRegistryBuilder().
//	    Constant("area", "square", 100).
//	    Failing("area", "blob", errors.New("boom")).
//	    Build()
//
// Chain only the bindings you need. Build panics on registration errors
// (empty tags, nil implementations), which are builder misuse in tests.
type RegistryBuilder struct {
	bindings []binding
}

type binding struct {
	measure core.Measure
	kind    core.Kind
	fn      core.MeasureFunc
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder { return &RegistryBuilder{} }

// Func binds fn for the (measure, kind) pair (chainable).
func (b *RegistryBuilder) Func(measure core.Measure, kind core.Kind, fn core.MeasureFunc) *RegistryBuilder {
	b.bindings = append(b.bindings, binding{measure: measure, kind: kind, fn: fn})
	return b
}

// Constant binds an implementation that ignores its shape and returns value
// (chainable).
func (b *RegistryBuilder) Constant(measure core.Measure, kind core.Kind, value float64) *RegistryBuilder {
	return b.Func(measure, kind, func(core.Shape) (float64, error) { return value, nil })
}

// Failing binds an implementation that always returns err (chainable).
func (b *RegistryBuilder) Failing(measure core.Measure, kind core.Kind, err error) *RegistryBuilder {
	return b.Func(measure, kind, func(core.Shape) (float64, error) { return 0, err })
}

// Panicking binds an implementation that panics with msg (chainable).
func (b *RegistryBuilder) Panicking(measure core.Measure, kind core.Kind, msg string) *RegistryBuilder {
	return b.Func(measure, kind, func(core.Shape) (float64, error) { panic(msg) })
}

// Build registers all bindings into a fresh in-memory registry.
func (b *RegistryBuilder) Build() core.Registry {
	store := registry.NewInMemoryStore()
	for _, bind := range b.bindings {
		if err := store.Register(bind.measure, bind.kind, bind.fn); err != nil {
			panic(fmt.Sprintf("testutil: register %s/%s: %v", bind.measure, bind.kind, err))
		}
	}

	return store
}
