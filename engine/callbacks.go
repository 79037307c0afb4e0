package engine

import (
	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/logging"
)

// CallbackType defines the specific lifecycle points where callbacks can be
// executed.
//
// Callbacks provide a mechanism for hooking into the dispatch pipeline
// without modifying core logic. Each type represents a specific point in a
// calculation's lifecycle where custom logic can be injected.
//
// Available callback types:
//   - BeforeCalculate/AfterCalculate: Around implementation execution
//   - OnError: When a dispatch fails for any reason
//   - OnRegister: When an implementation is bound into the registry
//
// Callbacks are executed synchronously and can influence execution flow by
// returning errors that terminate the calculation.
type CallbackType string

const (
	// CallbackBeforeCalculate is triggered after the shape passed validation
	// and before the implementation executes. Use for admission control,
	// auditing, or instrumentation.
	CallbackBeforeCalculate CallbackType = "before_calculate"

	// CallbackAfterCalculate is triggered after the implementation returned
	// successfully. Use for result validation, caching, or metrics
	// collection. A returned error converts the calculation into a failure.
	CallbackAfterCalculate CallbackType = "after_calculate"

	// CallbackOnError is triggered when a dispatch fails for any reason.
	// Use for alerting or custom error accounting. Errors returned here are
	// logged and otherwise ignored; the original dispatch error wins.
	CallbackOnError CallbackType = "on_error"

	// CallbackOnRegister is triggered after an implementation was bound.
	// A returned error propagates to the Register caller, but the binding
	// itself is kept.
	CallbackOnRegister CallbackType = "on_register"
)

// CallbackContext provides dispatch details for callback execution.
//
// The context is populated by the engine and passed to each callback. Which
// fields are set depends on the callback type; unrelated fields hold their
// zero values.
type CallbackContext struct {
	// CalculationID correlates the callback with engine log output. Empty
	// for registration callbacks.
	CalculationID string

	// Measure and Kind identify the dispatch table entry involved.
	Measure core.Measure
	Kind    core.Kind

	// Shape is the value being measured. Nil for registration callbacks.
	Shape core.Shape

	// Value is the computed result. Only set for after-calculate callbacks.
	Value float64

	// Err is the dispatch error. Only set for on-error callbacks.
	Err error
}

// Callback defines the interface for dispatch lifecycle hooks.
//
// Implementations should be:
//   - Fast: Callbacks run synchronously on the dispatch path
//   - Safe: Handle errors gracefully and avoid panics
//   - Stateless: Don't rely on mutable state between calculations
//
// Error Handling:
// A callback returning an error terminates the calculation. The error is
// wrapped as an EXECUTION_ERROR dispatch error unless the callback already
// returned a *core.DispatchError, which passes through unchanged.
type Callback interface {
	// Type returns the callback type this implementation handles. Used by
	// the callback manager to route callbacks to the right lifecycle point.
	Type() CallbackType

	// Execute performs the callback logic with the provided context.
	Execute(callbackCtx *CallbackContext) error
}

// FunctionCallback wraps a function as a callback implementation.
//
// This is a convenience wrapper that allows simple functions to be used as
// callbacks without implementing the full Callback interface.
//
// Example:
//
//	audit := NewFunctionCallback(
//	    CallbackBeforeCalculate,
//	    func(callbackCtx *CallbackContext) error {
//	        log.Printf("calculating %s for %s", callbackCtx.Measure, callbackCtx.Kind)
//	        return nil
//	    },
//	)
type FunctionCallback struct {
	callbackType CallbackType
	fn           func(callbackCtx *CallbackContext) error
}

// NewFunctionCallback creates a new function-based callback.
func NewFunctionCallback(
	callbackType CallbackType,
	fn func(callbackCtx *CallbackContext) error,
) *FunctionCallback {
	return &FunctionCallback{
		callbackType: callbackType,
		fn:           fn,
	}
}

// Type returns the callback type this function handles.
func (c *FunctionCallback) Type() CallbackType {
	return c.callbackType
}

// Execute calls the wrapped function with the provided context.
func (c *FunctionCallback) Execute(callbackCtx *CallbackContext) error {
	return c.fn(callbackCtx)
}

// CallbackManager orchestrates callback execution around dispatch.
//
// The manager provides a centralized registry for callbacks and ensures they
// run at the appropriate points. Multiple callbacks can be registered per
// type; they execute sequentially in registration order, and the first error
// stops the chain.
//
// Thread Safety:
// Registration is not thread-safe; complete it before starting calculations.
// Once registration is complete, callback execution is safe for concurrent
// use.
type CallbackManager struct {
	callbacks map[CallbackType][]Callback
}

// NewCallbackManager creates a new callback manager instance.
func NewCallbackManager() *CallbackManager {
	return &CallbackManager{
		callbacks: make(map[CallbackType][]Callback),
	}
}

// RegisterCallback adds a callback to the manager for its declared type.
//
// Example:
//
//	manager := NewCallbackManager()
//	manager.RegisterCallback(auditCallback)
//	manager.RegisterCallback(metricsCallback)
func (cm *CallbackManager) RegisterCallback(callback Callback) {
	callbackType := callback.Type()
	cm.callbacks[callbackType] = append(cm.callbacks[callbackType], callback)
}

// ExecuteCallbacks executes all registered callbacks for the specified type.
//
// Callbacks run sequentially in registration order. If any callback returns
// an error, execution stops immediately and the error is returned;
// subsequent callbacks will not run.
func (cm *CallbackManager) ExecuteCallbacks(callbackType CallbackType, callbackCtx *CallbackContext) error {
	callbacks, exists := cm.callbacks[callbackType]
	if !exists {
		return nil // No callbacks registered for this type
	}

	for _, callback := range callbacks {
		if err := callback.Execute(callbackCtx); err != nil {
			return err
		}
	}

	return nil
}

// LoggingCallback forwards dispatch lifecycle events to a structured logger.
//
// This callback implementation is useful for debugging, monitoring, and
// audit trails without wiring a logger into every implementation.
//
// Example:
//
//	callback := NewLoggingCallback(CallbackAfterCalculate, logger)
type LoggingCallback struct {
	callbackType CallbackType
	logger       logging.Logger
}

// NewLoggingCallback creates a new logging callback for the given lifecycle
// point.
func NewLoggingCallback(callbackType CallbackType, logger logging.Logger) *LoggingCallback {
	return &LoggingCallback{
		callbackType: callbackType,
		logger:       logger,
	}
}

// Type returns the callback type this logger handles.
func (c *LoggingCallback) Type() CallbackType {
	return c.callbackType
}

// Execute logs the dispatch event with context information.
func (c *LoggingCallback) Execute(callbackCtx *CallbackContext) error {
	if c.logger == nil {
		return nil
	}

	args := []any{
		"calculation_id", callbackCtx.CalculationID,
		"measure", callbackCtx.Measure,
		"kind", callbackCtx.Kind,
	}

	if callbackCtx.Err != nil {
		args = append(args, "error", callbackCtx.Err.Error())
	} else {
		args = append(args, "value", callbackCtx.Value)
	}

	c.logger.Info("callback."+string(c.callbackType), args...)

	return nil
}

// ResultValidationCallback validates computed values after calculation.
//
// The engine returns implementation results unchanged; this callback is the
// place to enforce result hygiene such as rejecting NaN, infinities, or
// negative measures. The validator receives the computed value and can
// return an error to turn the calculation into a failure.
//
// Example:
//
//	finite := NewResultValidationCallback(func(value float64) error {
//	    if math.IsNaN(value) || math.IsInf(value, 0) {
//	        return errors.New("non-finite result")
//	    }
//	    return nil
//	})
type ResultValidationCallback struct {
	validator func(value float64) error
}

// NewResultValidationCallback creates a new result validation callback.
func NewResultValidationCallback(validator func(value float64) error) *ResultValidationCallback {
	return &ResultValidationCallback{
		validator: validator,
	}
}

// Type returns the callback type (always CallbackAfterCalculate).
func (c *ResultValidationCallback) Type() CallbackType {
	return CallbackAfterCalculate
}

// Execute validates the computed value.
//
// If no validator is configured, the callback silently succeeds.
func (c *ResultValidationCallback) Execute(callbackCtx *CallbackContext) error {
	if c.validator != nil {
		return c.validator(callbackCtx.Value)
	}

	return nil
}
