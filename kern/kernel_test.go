package kern

import (
	"testing"

	"github.com/ogaoue/gpe/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewValidatesColumns(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := New("linear", nil, nil, evalLinear)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("duplicates", func(t *testing.T) {
		_, err := New("linear", []string{"x", "y", "x"}, nil, evalLinear)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), `"x"`)
	})
}

func TestKernelAccessors(t *testing.T) {
	k, err := NewLinear([]string{"x", "y"}, 1, []float64{0, 0})
	require.NoError(t, err)

	assert.Equal(t, "linear", k.Family())
	assert.Equal(t, []string{"x", "y"}, k.Columns())
	require.NotNil(t, k.Param("sigma"))
	assert.Nil(t, k.Param("lengthscale"))

	// The returned slice is a copy; the binding stays fixed.
	cols := k.Columns()
	cols[0] = "z"
	assert.Equal(t, []string{"x", "y"}, k.Columns())
}

func TestEvalRejectsDiagWithNewdata(t *testing.T) {
	k, err := NewLinear([]string{"x"}, 1, []float64{0})
	require.NoError(t, err)
	data := frame.NewTable(2).AddFloats("x", []float64{1, 2})
	newdata := frame.NewTable(2).AddFloats("x", []float64{3, 4})

	_, err = k.Eval(data, newdata, true)
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestFeatures(t *testing.T) {
	k, err := NewLinear([]string{"x", "y"}, 1, []float64{0, 0})
	require.NoError(t, err)

	t.Run("column order follows the kernel", func(t *testing.T) {
		f := frame.NewTable(2).
			AddFloats("y", []float64{3, 4}).
			AddFloats("x", []float64{1, 2})
		got, err := Features(k, f)
		require.NoError(t, err)
		want := mat.NewDense(2, 2, []float64{1, 3, 2, 4})
		assert.True(t, mat.Equal(want, got))
	})

	t.Run("missing column", func(t *testing.T) {
		f := frame.NewTable(2).AddFloats("x", []float64{1, 2})
		_, err := Features(k, f)
		require.ErrorIs(t, err, frame.ErrMissingColumn)
	})

	t.Run("non-numeric column", func(t *testing.T) {
		f := frame.NewTable(2).
			AddFloats("x", []float64{1, 2}).
			AddStrings("y", []string{"a", "b"})
		_, err := Features(k, f)
		require.ErrorIs(t, err, frame.ErrTypeMismatch)
	})

	t.Run("zero rows still validates columns", func(t *testing.T) {
		f := frame.NewTable(0).AddFloats("x", nil)
		_, err := Features(k, f)
		require.ErrorIs(t, err, frame.ErrMissingColumn)
	})
}

func TestEvalEmptyData(t *testing.T) {
	k, err := NewLinear([]string{"x"}, 1, []float64{0})
	require.NoError(t, err)
	empty := frame.NewTable(0).AddFloats("x", nil)

	cov, err := k.Matrix(empty, nil)
	require.NoError(t, err)
	assert.True(t, cov.IsEmpty())

	diag, err := k.Diag(empty)
	require.NoError(t, err)
	assert.True(t, diag.IsEmpty())
}
