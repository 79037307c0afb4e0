package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shapemesh/core"
	"github.com/hupe1980/shapemesh/internal/testutil"
	"github.com/hupe1980/shapemesh/measure"
	"github.com/hupe1980/shapemesh/shape"
)

func TestCallbacks_BeforeCalculateVeto(t *testing.T) {
	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewFunctionCallback(CallbackBeforeCalculate, func(callbackCtx *CallbackContext) error {
		if callbackCtx.Measure == measure.Area {
			return errors.New("area calculations disabled")
		}
		return nil
	}))

	eng := newDefaultEngine(t, func(o *Options) {
		o.Callbacks = callbacks
	})

	sq, err := shape.NewSquare(10)
	require.NoError(t, err)

	_, err = eng.Calculate(measure.Area, sq)
	var dispatchErr *core.DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, core.CodeExecutionError, dispatchErr.Code)
	assert.Contains(t, dispatchErr.Message, "disabled")

	// other measures pass the gate untouched
	got, err := eng.Calculate(measure.Perimeter, sq)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got)
}

func TestCallbacks_RunInRegistrationOrder(t *testing.T) {
	var order []string

	callbacks := NewCallbackManager()
	for _, name := range []string{"first", "second"} {
		name := name // per-iteration copy; go.mod targets go < 1.22
		callbacks.RegisterCallback(NewFunctionCallback(CallbackBeforeCalculate, func(*CallbackContext) error {
			order = append(order, name)
			return nil
		}))
	}

	eng := newDefaultEngine(t, func(o *Options) {
		o.Callbacks = callbacks
	})

	sq, err := shape.NewSquare(10)
	require.NoError(t, err)

	_, err = eng.Calculate(measure.Area, sq)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCallbacks_AfterCalculateObservesValue(t *testing.T) {
	var observed float64

	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewFunctionCallback(CallbackAfterCalculate, func(callbackCtx *CallbackContext) error {
		observed = callbackCtx.Value
		return nil
	}))

	eng := newDefaultEngine(t, func(o *Options) {
		o.Callbacks = callbacks
	})

	sq, err := shape.NewSquare(10)
	require.NoError(t, err)

	_, err = eng.Calculate(measure.Area, sq)
	require.NoError(t, err)
	assert.Equal(t, 100.0, observed)
}

func TestCallbacks_ResultValidation(t *testing.T) {
	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewResultValidationCallback(func(value float64) error {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return errors.New("non-finite result")
		}
		return nil
	}))

	eng := New(func(o *Options) {
		o.Callbacks = callbacks
		o.Registry = testutil.NewRegistryBuilder().
			Constant("area", "square", math.NaN()).
			Build()
	})

	sq, err := shape.NewSquare(1)
	require.NoError(t, err)

	_, err = eng.Calculate("area", sq)
	var dispatchErr *core.DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, core.CodeExecutionError, dispatchErr.Code)
	assert.Contains(t, dispatchErr.Message, "non-finite")
}

func TestCallbacks_OnErrorObservesFailures(t *testing.T) {
	var codes []string

	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewFunctionCallback(CallbackOnError, func(callbackCtx *CallbackContext) error {
		var dispatchErr *core.DispatchError
		if errors.As(callbackCtx.Err, &dispatchErr) {
			codes = append(codes, dispatchErr.Code)
		}
		return nil
	}))

	eng := newDefaultEngine(t, func(o *Options) {
		o.Callbacks = callbacks
	})

	sq, err := shape.NewSquare(10)
	require.NoError(t, err)

	_, err = eng.Calculate("volume", sq)
	require.Error(t, err)
	assert.Equal(t, []string{core.CodeUnknownMeasure}, codes)
}

func TestCallbacks_OnRegister(t *testing.T) {
	registrations := 0

	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewFunctionCallback(CallbackOnRegister, func(callbackCtx *CallbackContext) error {
		registrations++
		return nil
	}))

	eng := New(func(o *Options) {
		o.Callbacks = callbacks
	})

	err := eng.Register("area", "square", func(core.Shape) (float64, error) { return 0, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, registrations)
}

func TestCallbacks_LoggingCallback(t *testing.T) {
	logger := testutil.NewCaptureLogger()

	callbacks := NewCallbackManager()
	callbacks.RegisterCallback(NewLoggingCallback(CallbackAfterCalculate, logger))

	eng := newDefaultEngine(t, func(o *Options) {
		o.Callbacks = callbacks
	})

	sq, err := shape.NewSquare(10)
	require.NoError(t, err)

	_, err = eng.Calculate(measure.Area, sq)
	require.NoError(t, err)

	require.True(t, logger.Has("callback.after_calculate"))
	entry := logger.Entries()[0]
	value, ok := entry.Arg("value")
	require.True(t, ok)
	assert.Equal(t, 100.0, value)
}
