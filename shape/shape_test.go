package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/shapemesh/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Shape = Square{}
	_ core.Shape = Circle{}
	_ core.Shape = Triangle{}
)

func TestNewSquare(t *testing.T) {
	sq, err := NewSquare(10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sq.Side)
	assert.Equal(t, KindSquare, sq.Kind())
}

func TestNewSquare_RejectsNegativeSide(t *testing.T) {
	_, err := NewSquare(-10)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "side", ve.Field)
}

func TestNewSquare_ZeroIsDegenerateButValid(t *testing.T) {
	sq, err := NewSquare(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sq.Side)
}

func TestNewCircle_RejectsNonFiniteRadius(t *testing.T) {
	for _, radius := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewCircle(radius)
		assert.Error(t, err, "radius %v should be rejected", radius)
	}
}

func TestNewTriangle(t *testing.T) {
	tr, err := NewTriangle(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 6.0, tr.Base)
	assert.Equal(t, 7.0, tr.Height)
	assert.Equal(t, KindTriangle, tr.Kind())
}

func TestNewTriangle_RejectsNegativeHeight(t *testing.T) {
	_, err := NewTriangle(6, -7)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "height", ve.Field)
}

func TestSquareFromParams(t *testing.T) {
	sq, err := SquareFromParams(map[string]any{"side": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 10.0, sq.Side)
}

func TestSquareFromParams_MissingField(t *testing.T) {
	_, err := SquareFromParams(map[string]any{})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "side", ve.Field)
	assert.Contains(t, ve.Message, "missing")
}

func TestCircleFromParams_RejectsNonNumericRadius(t *testing.T) {
	_, err := CircleFromParams(map[string]any{"radius": "big"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "radius", ve.Field)
}

func TestTriangleFromParams_AcceptsIntegers(t *testing.T) {
	tr, err := TriangleFromParams(map[string]any{"base": 6, "height": 7})
	require.NoError(t, err)
	assert.Equal(t, 6.0, tr.Base)
	assert.Equal(t, 7.0, tr.Height)
}

func TestFromParams(t *testing.T) {
	s, err := FromParams(KindCircle, map[string]any{"radius": 10.0})
	require.NoError(t, err)
	assert.Equal(t, KindCircle, s.Kind())
	assert.Equal(t, Circle{Radius: 10}, s)
}

func TestFromParams_UnknownKind(t *testing.T) {
	_, err := FromParams(core.Kind("blob"), map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blob")
}

func TestString(t *testing.T) {
	sq, _ := NewSquare(10)
	assert.Equal(t, "square(side=10)", sq.String())

	tr, _ := NewTriangle(6, 7)
	assert.Equal(t, "triangle(base=6, height=7)", tr.String())
}
