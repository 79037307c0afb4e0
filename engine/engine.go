package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/util"
	"github.com/hupe1980/shapemesh/logging"
	"github.com/hupe1980/shapemesh/registry"
)

// Config defines tuning parameters for the Engine's dispatch behavior.
//
// The configuration focuses on safety and observability trade-offs:
//   - Validation: Whether shape dimensions are re-checked on every dispatch
//   - Recovery: Whether panics in implementations become errors
//   - Statistics: Whether per-measure counters are maintained
//
// Additional concerns should be configured via functional options on New
// rather than expanding this struct.
//
// Example:
//
//	cfg := Config{
//	    ValidateShapes: true,
//	    RecoverPanics:  true,
//	    CollectStats:   false,
//	}
type Config struct {
	// ValidateShapes re-checks every dimension of a shape before dispatch.
	// Shapes built through their constructors are already valid; this guards
	// against struct literals that bypassed validation. Costs one reflection
	// pass per calculation.
	ValidateShapes bool

	// RecoverPanics converts panics escaping an implementation into an
	// EXECUTION_ERROR dispatch error instead of crashing the process.
	// Registries are open to third-party implementations, so the engine
	// treats them as untrusted by default.
	RecoverPanics bool

	// CollectStats maintains per-measure dispatch counters, exposed via
	// Stats(). Disable to skip the counter mutex on hot paths.
	CollectStats bool
}

// DefaultConfig provides production-ready default configuration values.
//
// Configuration values:
//   - ValidateShapes: true (reject invalid dimensions at dispatch time)
//   - RecoverPanics: true (isolate implementation failures)
//   - CollectStats: true (cheap counters, useful for monitoring)
var DefaultConfig = Config{
	ValidateShapes: true,
	RecoverPanics:  true,
	CollectStats:   true,
}

// Options configures an Engine instance using the functional options pattern.
//
// Example:
//
//	eng := New(func(o *Options) {
//	    o.Config.ValidateShapes = false
//	    o.Logger = myLogger
//	})
type Options struct {
	// Config contains operational parameters for dispatch behavior.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// Registry holds the (measure, kind) -> implementation bindings.
	// Defaults to an empty in-memory registry if not provided. Supplying a
	// shared registry lets several engines dispatch over the same bindings.
	Registry core.Registry

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger

	// Callbacks hooks lifecycle callbacks into the dispatch pipeline.
	// Defaults to an empty manager.
	Callbacks *CallbackManager
}

// Engine resolves measure implementations for shapes and executes them.
//
// Dispatch is a two-step resolution:
//  1. The measure selects its implementation table (miss: UNKNOWN_MEASURE)
//  2. The shape's kind selects the implementation (miss: UNSUPPORTED_SHAPE)
//
// Both steps are exact matches; the registry stays open for registration
// while calculations run.
//
// Error Handling:
//   - Invalid shapes are rejected before resolution (INVALID_SHAPE)
//   - Resolution misses report the level that missed (UNKNOWN_MEASURE,
//     UNSUPPORTED_SHAPE)
//   - Implementation failures and panics surface as EXECUTION_ERROR
//
// Every calculation carries a correlation ID through logs and callbacks, so
// a single dispatch can be traced across debug output.
type Engine struct {
	registry  core.Registry    // (measure, kind) -> implementation bindings
	logger    logging.Logger   // Structured logging interface
	callbacks *CallbackManager // Lifecycle callbacks around dispatch

	config Config // Operational parameters - immutable after construction

	stats *core.StatsCollector // Dispatch counters, nil when disabled
}

// New creates a new Engine instance with sensible defaults and optional
// configuration.
//
// Default Services:
//   - Registry: Empty in-memory registry
//   - Logger: No-op logger that discards all messages
//   - Callbacks: Empty callback manager
//
// The defaults enable immediate use without external dependencies. A fresh
// engine knows no measures; bind implementations via Register or provide a
// pre-populated registry.
//
// Examples:
//
//	// Minimal setup with all defaults
//	eng := New()
//
//	// Custom registry and logger
//	eng := New(func(o *Options) {
//	    o.Registry = sharedRegistry
//	    o.Logger = logging.NewDefaultSlogLogger()
//	})
//
// The engine does not take ownership of a provided registry; callers may
// keep registering implementations on it directly.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:    DefaultConfig,
		Registry:  registry.NewInMemoryStore(),
		Logger:    logging.NoOpLogger{},
		Callbacks: NewCallbackManager(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Engine{
		registry:  opts.Registry,
		logger:    opts.Logger,
		callbacks: opts.Callbacks,
		config:    opts.Config,
	}

	if opts.Config.CollectStats {
		e.stats = core.NewStatsCollector()
	}

	return e
}

// Register binds fn as the implementation of measure for shapes of the given
// kind, making the pair dispatchable. Registering over an existing pair
// replaces the previous implementation without warning.
//
// Registration is thread-safe and may interleave with running calculations.
// It is still recommended to complete registration during initialization so
// dispatch coverage is predictable.
func (e *Engine) Register(measure core.Measure, kind core.Kind, fn core.MeasureFunc) error {
	if err := e.registry.Register(measure, kind, fn); err != nil {
		return err
	}

	e.logger.Debug("measure.register", "measure", measure, "kind", kind)

	return e.callbacks.ExecuteCallbacks(CallbackOnRegister, &CallbackContext{
		Measure: measure,
		Kind:    kind,
	})
}

// Calculate computes the named measure for the shape by resolving the
// implementation registered for (measure, s.Kind()) and executing it.
//
// Resolution is exact-match at both levels. Every failure mode is reported
// as a *core.DispatchError carrying a stable machine-readable code:
//
//   - INVALID_SHAPE: the shape is nil or carries invalid dimensions
//   - UNKNOWN_MEASURE: no implementation table exists for the measure
//   - UNSUPPORTED_SHAPE: the table exists but does not cover this shape kind
//   - EXECUTION_ERROR: the implementation returned an error or panicked
//
// The shape value is passed to the implementation unchanged and the result
// is returned unchanged; the engine adds no rounding or unit handling.
func (e *Engine) Calculate(measure core.Measure, s core.Shape) (float64, error) {
	calculationID := core.NewID()

	if s == nil {
		return 0, e.fail(calculationID, core.NewDispatchError(
			measure, "", "shape must not be nil", core.CodeInvalidShape))
	}

	kind := s.Kind()

	e.logger.Debug("dispatch.start",
		"calculation_id", calculationID,
		"measure", measure,
		"kind", kind,
		"dimensions", util.Dimensions(s),
	)

	if e.config.ValidateShapes {
		if err := util.ValidateDimensions(s); err != nil {
			e.logger.Warn("dispatch.validation_failed",
				"calculation_id", calculationID,
				"measure", measure,
				"kind", kind,
				"error", err.Error(),
			)

			return 0, e.reject(calculationID, core.NewDispatchError(
				measure, kind, err.Error(), core.CodeInvalidShape))
		}
	}

	if err := e.callbacks.ExecuteCallbacks(CallbackBeforeCalculate, &CallbackContext{
		CalculationID: calculationID,
		Measure:       measure,
		Kind:          kind,
		Shape:         s,
	}); err != nil {
		return 0, e.fail(calculationID, asDispatchError(measure, kind, err))
	}

	table, ok := e.registry.Table(measure)
	if !ok {
		return 0, e.fail(calculationID, core.NewDispatchError(
			measure, kind, "no implementations registered", core.CodeUnknownMeasure))
	}

	fn, ok := table.Lookup(kind)
	if !ok {
		dispatchErr := core.NewDispatchError(
			measure, kind, "not implemented for this shape kind", core.CodeUnsupportedShape)
		dispatchErr.Details = map[string]any{"supported_kinds": table.Kinds()}

		return 0, e.fail(calculationID, dispatchErr)
	}

	start := time.Now()
	value, err := e.invoke(fn, s, calculationID)
	if err != nil {
		return 0, e.fail(calculationID, asDispatchError(measure, kind, err))
	}

	if err := e.callbacks.ExecuteCallbacks(CallbackAfterCalculate, &CallbackContext{
		CalculationID: calculationID,
		Measure:       measure,
		Kind:          kind,
		Shape:         s,
		Value:         value,
	}); err != nil {
		return 0, e.fail(calculationID, asDispatchError(measure, kind, err))
	}

	if e.stats != nil {
		e.stats.Record(measure, true)
	}

	e.logger.Info("dispatch.success",
		"calculation_id", calculationID,
		"measure", measure,
		"kind", kind,
		"value", value,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return value, nil
}

// MeasureAll computes every registered measure that covers the shape's kind
// and returns the results keyed by measure. Measures that do not cover the
// kind are skipped rather than reported as errors, so a partially covered
// shape yields a partial map. The first execution failure aborts and returns
// its dispatch error.
func (e *Engine) MeasureAll(s core.Shape) (map[core.Measure]float64, error) {
	if s == nil {
		return nil, core.NewDispatchError("", "", "shape must not be nil", core.CodeInvalidShape)
	}

	results := make(map[core.Measure]float64)

	for _, measure := range e.registry.Measures() {
		if !e.Supports(measure, s.Kind()) {
			continue
		}

		value, err := e.Calculate(measure, s)
		if err != nil {
			return nil, err
		}

		results[measure] = value
	}

	return results, nil
}

// Supports reports whether an implementation is registered for the exact
// (measure, kind) pair right now.
func (e *Engine) Supports(measure core.Measure, kind core.Kind) bool {
	_, ok := e.registry.Lookup(measure, kind)
	return ok
}

// Registry exposes the underlying registry, e.g. to share bindings between
// engines or to inspect dispatch coverage.
func (e *Engine) Registry() core.Registry {
	return e.registry
}

// Stats returns a snapshot of dispatch counters. The zero Stats value is
// returned when statistics collection is disabled.
func (e *Engine) Stats() core.Stats {
	if e.stats == nil {
		return core.Stats{}
	}

	return e.stats.Snapshot()
}

// invoke executes the implementation, optionally converting panics into
// errors.
func (e *Engine) invoke(fn core.MeasureFunc, s core.Shape, calculationID string) (value float64, err error) {
	if e.config.RecoverPanics {
		defer func() { // panic safety
			if r := recover(); r != nil {
				err = fmt.Errorf("implementation panic: %v", r)
				e.logger.Error("dispatch.panic", "calculation_id", calculationID, "recover", r)
			}
		}()
	}

	return fn(s)
}

// fail logs a failed dispatch and records it.
func (e *Engine) fail(calculationID string, dispatchErr *core.DispatchError) *core.DispatchError {
	e.logger.Error("dispatch.error",
		"calculation_id", calculationID,
		"measure", dispatchErr.Measure,
		"kind", dispatchErr.Kind,
		"code", dispatchErr.Code,
		"error", dispatchErr.Message,
	)

	return e.reject(calculationID, dispatchErr)
}

// reject records a failed dispatch in the statistics and error callbacks
// without emitting the error log line.
func (e *Engine) reject(calculationID string, dispatchErr *core.DispatchError) *core.DispatchError {
	if e.stats != nil {
		e.stats.Record(dispatchErr.Measure, false)
	}

	if cbErr := e.callbacks.ExecuteCallbacks(CallbackOnError, &CallbackContext{
		CalculationID: calculationID,
		Measure:       dispatchErr.Measure,
		Kind:          dispatchErr.Kind,
		Err:           dispatchErr,
	}); cbErr != nil {
		e.logger.Warn("callback.failed", "calculation_id", calculationID, "error", cbErr.Error())
	}

	return dispatchErr
}

// asDispatchError passes implementation-raised dispatch errors through
// unchanged and wraps everything else as an execution failure.
func asDispatchError(measure core.Measure, kind core.Kind, err error) *core.DispatchError {
	var dispatchErr *core.DispatchError
	if errors.As(err, &dispatchErr) {
		return dispatchErr
	}

	return core.NewDispatchError(measure, kind, err.Error(), core.CodeExecutionError)
}
