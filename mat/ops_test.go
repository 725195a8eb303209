package mat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsvmlab/twinsvm/mat"
)

// mustDense builds a Dense from rows, failing the test on error.
func mustDense(t *testing.T, rows [][]float64) *mat.Dense {
	t.Helper()
	m, err := mat.FromRows(rows)
	require.NoError(t, err)

	return m
}

// assertDenseEqual compares every entry of got against want within delta.
func assertDenseEqual(t *testing.T, want [][]float64, got *mat.Dense, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, delta, "entry (%d,%d)", i, j)
		}
	}
}

// TestMul_Known checks a hand-computed 2x3 · 3x2 product.
func TestMul_Known(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := mat.Mul(a, b)
	require.NoError(t, err)
	assertDenseEqual(t, [][]float64{{58, 64}, {139, 154}}, c, 0)
}

// TestMul_DimensionMismatch ensures incompatible inner dims error out.
func TestMul_DimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{1, 2}})

	_, err := mat.Mul(a, b)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestMulT_MatchesExplicitTranspose cross-checks MulT against Transpose+Mul.
func TestMulT_MatchesExplicitTranspose(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	fast, err := mat.MulT(a, b)
	require.NoError(t, err)

	at, err := mat.Transpose(a)
	require.NoError(t, err)
	slow, err := mat.Mul(at, b)
	require.NoError(t, err)

	for i := 0; i < fast.Rows(); i++ {
		for j := 0; j < fast.Cols(); j++ {
			fv, _ := fast.At(i, j)
			sv, _ := slow.At(i, j)
			assert.Equal(t, sv, fv, "MulT must equal Transpose+Mul at (%d,%d)", i, j)
		}
	}
}

// TestMatVec_Known checks a hand-computed matrix-vector product.
func TestMatVec_Known(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	y, err := mat.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	_, err = mat.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestMulTVec_Known checks Aᵀx against the explicit transpose product.
func TestMulTVec_Known(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := mat.MulTVec(a, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12}, y, "column sums of a")

	_, err = mat.MulTVec(a, []float64{1, 1})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestAppendOnes adds the bias column and leaves the original untouched.
func TestAppendOnes(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	aug, err := mat.AppendOnes(a)
	require.NoError(t, err)
	assertDenseEqual(t, [][]float64{{1, 2, 1}, {3, 4, 1}}, aug, 0)
	assert.Equal(t, 2, a.Cols(), "original must keep its shape")
}

// TestAddRidge shifts only the diagonal and rejects non-square input.
func TestAddRidge(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	r, err := mat.AddRidge(a, 0.5)
	require.NoError(t, err)
	assertDenseEqual(t, [][]float64{{1.5, 2}, {3, 4.5}}, r, 0)

	rect := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = mat.AddRidge(rect, 0.5)
	assert.ErrorIs(t, err, mat.ErrNonSquare)
}

// TestAddScaled verifies C = A + s·B and the shape guard.
func TestAddScaled(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{2, 2}, {2, 2}})

	c, err := mat.AddScaled(a, b, 0.5)
	require.NoError(t, err)
	assertDenseEqual(t, [][]float64{{2, 3}, {4, 5}}, c, 0)

	small := mustDense(t, [][]float64{{1}})
	_, err = mat.AddScaled(a, small, 1)
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestOnes returns an all-ones vector and tolerates n <= 0.
func TestOnes(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, mat.Ones(3))
	assert.Nil(t, mat.Ones(0))
}
