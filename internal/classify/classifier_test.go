package classify

import (
	"errors"
	"math"
	"testing"

	"github.com/ppiankov/typechart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		value    float64
		expected model.Symbol
	}{
		{0, model.Immune},
		{0.244140625, model.Immune},
		{0.39, model.Immune},
		{0.390625, model.Immune},
		{0.4, model.Resist},
		{0.625, model.Resist},
		{0.89, model.Resist},
		{0.9, model.Neutral},
		{1, model.Neutral},
		{1.09, model.Neutral},
		{1.1, model.Super},
		{1.6, model.Super},
		{1.69, model.Super},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			got, err := Classify(tt.value)
			require.NoError(t, err, "value %v", tt.value)
			assert.Equal(t, tt.expected, got, "value %v", tt.value)
		})
	}
}

func TestClassify_OutOfDomain(t *testing.T) {
	for _, v := range []float64{1.7, 2.0, 2.56, 5.0, math.Inf(1), math.NaN()} {
		got, err := Classify(v)
		require.Error(t, err, "value %v", v)
		assert.True(t, errors.Is(err, ErrOutOfDomain))
		assert.False(t, got.Valid())

		var oe *OutOfDomainError
		require.True(t, errors.As(err, &oe))
		if !math.IsNaN(v) {
			assert.Equal(t, v, oe.Value)
		}
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	// Sweep the valid domain: every value gets exactly one symbol and the
	// symbols never decrease as the multiplier grows.
	prev := model.Immune
	for v := 0.0; v < SuperBelow; v += 0.001 {
		s, err := Classify(v)
		require.NoError(t, err, "value %v", v)
		require.True(t, s.Valid())
		require.GreaterOrEqual(t, int(s), int(prev), "value %v", v)
		prev = s
	}
	assert.Equal(t, model.Super, prev)
}

func TestBuildSymbolicMatrix(t *testing.T) {
	types := []model.Type{model.Normal, model.Fighting, model.Flying}
	m := mat.NewDense(3, 3, []float64{
		1, 1.6, 0.5,
		1, 1, 1,
		0.25, 1, 1,
	})

	symbolic, err := BuildSymbolicMatrix(m, types)
	require.NoError(t, err)
	require.Len(t, symbolic, 3)

	assert.Equal(t, []string{"NSR", "NNN", "INN"}, symbolic.Rows())
	assert.Equal(t, model.Super, symbolic.At(model.Normal, model.Fighting))
	assert.Equal(t, model.Immune, symbolic.At(model.Flying, model.Normal))
}

func TestBuildSymbolicMatrix_NotSquare(t *testing.T) {
	types := []model.Type{model.Normal, model.Fighting}
	m := mat.NewDense(2, 3, []float64{1, 1, 1, 1, 1, 1})

	symbolic, err := BuildSymbolicMatrix(m, types)
	assert.Nil(t, symbolic)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	var de *DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Got)
	assert.Equal(t, 2, de.Want)
}

func TestBuildSymbolicMatrix_TypeCountMismatch(t *testing.T) {
	types := []model.Type{model.Normal, model.Fighting, model.Flying}
	m := mat.NewDense(2, 2, []float64{1, 1, 1, 1})

	_, err := BuildSymbolicMatrix(m, types)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestBuildSymbolicMatrix_OutOfDomainAborts(t *testing.T) {
	types := []model.Type{model.Normal, model.Fighting, model.Flying}
	m := mat.NewDense(3, 3, []float64{
		1, 1, 1,
		1, 1, 5.0,
		1, 1, 1,
	})

	symbolic, err := BuildSymbolicMatrix(m, types)
	assert.Nil(t, symbolic, "no partial matrix on failure")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDomain))

	var oe *OutOfDomainError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, model.Fighting, oe.Attacker)
	assert.Equal(t, model.Flying, oe.Defender)
	assert.Equal(t, 5.0, oe.Value)
	assert.Contains(t, err.Error(), "FIGHTING -> FLYING")
}
