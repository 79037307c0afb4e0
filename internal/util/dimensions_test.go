package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireNumber(t *testing.T) {
	params := map[string]any{"side": 10.0, "count": 3, "label": "big"}

	v, err := RequireNumber(params, "side")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)

	// Integers are widened to float64
	c, err := RequireNumber(params, "count")
	assert.NoError(t, err)
	assert.Equal(t, 3.0, c)

	// Missing required field
	_, err = RequireNumber(params, "radius")
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "radius", vErr.Field)
	assert.Contains(t, vErr.Message, "required field is missing")

	// Non-numeric field
	_, err = RequireNumber(params, "label")
	assert.Error(t, err)
	vErr, ok = err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Message, "expected type number")
}

func TestCheckDimension(t *testing.T) {
	assert.NoError(t, CheckDimension("side", 0))
	assert.NoError(t, CheckDimension("side", 2.5))
	assert.Error(t, CheckDimension("side", -1))
	assert.Error(t, CheckDimension("side", math.NaN()))
	assert.Error(t, CheckDimension("side", math.Inf(1)))
}

type boxDims struct {
	Width  float64 `json:"w"`
	Height float64
	Label  string
	hidden float64
}

func TestValidateDimensions(t *testing.T) {
	// Unexported and non-numeric fields are ignored
	assert.NoError(t, ValidateDimensions(boxDims{Width: 1, Height: 2, Label: "x", hidden: -3}))

	err := ValidateDimensions(boxDims{Width: -1})
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "w", vErr.Field)

	// Pointers are dereferenced
	assert.Error(t, ValidateDimensions(&boxDims{Height: math.NaN()}))

	// Non-struct values validate trivially
	assert.NoError(t, ValidateDimensions(42))
	assert.NoError(t, ValidateDimensions(nil))
}

func TestDimensions(t *testing.T) {
	dims := Dimensions(boxDims{Width: 1.5, Height: 2})
	assert.Equal(t, map[string]float64{"w": 1.5, "height": 2}, dims)
	assert.Empty(t, Dimensions("not a struct"))
}
