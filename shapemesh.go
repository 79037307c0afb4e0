// Package shapemesh provides a high-level façade over the dispatch engine
// and registry abstractions, enabling calculations over an open set of
// shapes and measures. Most applications interact with this package by:
//  1. Creating a ShapeMesh via New() (the built-in area and perimeter
//     implementations are bound by default)
//  2. Registering additional implementations for their own shapes or
//     measures via Register
//  3. Calculating via Calculate / MeasureAll
//
// The façade delegates dispatch to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; applications wanting full control supply their own registry,
// callbacks, and a structured logger.
package shapemesh

import (
	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/engine"
	"github.com/hupe1980/shapemesh/logging"
	"github.com/hupe1980/shapemesh/measure"
	"github.com/hupe1980/shapemesh/registry"
)

// Options configures the ShapeMesh instance.
type Options struct {
	// Engine configuration (validation, panic recovery, statistics)
	EngineConfig engine.Config

	// Registry holding the (measure, kind) bindings. Defaults to a fresh
	// in-memory registry populated with the built-in measures. A supplied
	// registry is used exactly as given; no defaults are added to it.
	Registry core.Registry

	// Callbacks hooked into the dispatch pipeline (defaults to none)
	Callbacks *engine.CallbackManager

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// SkipDefaults leaves the default registry empty instead of binding the
	// built-in area and perimeter implementations. Ignored when a custom
	// Registry is supplied.
	SkipDefaults bool
}

// ShapeMesh is the high-level façade aggregating the dispatch engine and its
// registry.
type ShapeMesh struct {
	opts   Options
	engine core.Dispatcher
}

// New creates a new ShapeMesh instance with optional overrides. Without a
// custom registry, the built-in measures are bound so calculations work out
// of the box.
func New(optFns ...func(o *Options)) *ShapeMesh {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		Callbacks:    engine.NewCallbackManager(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		store := registry.NewInMemoryStore()
		if !opts.SkipDefaults {
			// binding the built-ins into a fresh store cannot fail
			_ = measure.RegisterDefaults(store)
		}

		opts.Registry = store
	}

	e := engine.New(func(o *engine.Options) {
		o.Config = opts.EngineConfig
		o.Registry = opts.Registry
		o.Callbacks = opts.Callbacks
		o.Logger = opts.Logger
	})

	return &ShapeMesh{opts: opts, engine: e}
}

// Register binds fn as the implementation of measure for the given shape
// kind. Later registrations for the same pair replace earlier ones.
func (m *ShapeMesh) Register(measure core.Measure, kind core.Kind, fn core.MeasureFunc) error {
	return m.engine.Register(measure, kind, fn)
}

// Calculate computes the named measure for the shape. Failures are reported
// as *core.DispatchError values with stable codes; see core.Dispatcher.
func (m *ShapeMesh) Calculate(measure core.Measure, s core.Shape) (float64, error) {
	return m.engine.Calculate(measure, s)
}

// MeasureAll computes every measure covering the shape's kind, keyed by
// measure. Measures that do not cover the kind are skipped.
func (m *ShapeMesh) MeasureAll(s core.Shape) (map[core.Measure]float64, error) {
	return m.engine.MeasureAll(s)
}

// Supports reports whether the exact (measure, kind) pair is dispatchable.
func (m *ShapeMesh) Supports(measure core.Measure, kind core.Kind) bool {
	return m.engine.Supports(measure, kind)
}

// Registry exposes the underlying registry, e.g. to share bindings with a
// second engine or to inspect coverage.
func (m *ShapeMesh) Registry() core.Registry {
	return m.opts.Registry
}

// Measures lists every measure with at least one implementation.
func (m *ShapeMesh) Measures() []core.Measure {
	return m.opts.Registry.Measures()
}

// Kinds lists the shape kinds covered by the measure. It returns nil for a
// measure without any implementations.
func (m *ShapeMesh) Kinds(measure core.Measure) []core.Kind {
	table, ok := m.opts.Registry.Table(measure)
	if !ok {
		return nil
	}

	return table.Kinds()
}

// Stats returns a snapshot of dispatch activity. The zero value is returned
// when statistics collection is disabled via EngineConfig.
func (m *ShapeMesh) Stats() core.Stats {
	return m.engine.Stats()
}
