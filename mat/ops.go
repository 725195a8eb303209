// SPDX-License-Identifier: MIT
// Package mat - products and structural helpers used by the TwinSVM trainer.
// All kernels use fixed loop orders (i→k→j for products) and one allocation
// per result; operands are never mutated.

package mat

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opMulT       = "MulT"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opMulTVec    = "MulTVec"
	opAppendOnes = "AppendOnes"
	opAddRidge   = "AddRidge"
	opAddScaled  = "AddScaled"
)

// validatePair reports ErrNilMatrix if either operand is nil.
func validatePair(op string, a, b *Dense) error {
	if a == nil || b == nil {
		return matErrorf(op, ErrNilMatrix)
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Stage 1 (Validate): operands non-nil, A.Cols == B.Rows.
// Stage 2 (Execute): i→k→j order over the flat buffers, skipping zero A[i,k].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := validatePair(opMul, a, b); err != nil {
		return nil, err
	}
	if a.c != b.r {
		return nil, fmt.Errorf("%s: inner dims %d vs %d: %w", opMul, a.c, b.r, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matErrorf(opMul, err)
	}

	var aik float64
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 { // zero-skip keeps sparse-ish grams cheap
				continue
			}
			out := res.data[i*b.c : (i+1)*b.c]
			bRow := b.data[k*b.c : (k+1)*b.c]
			for j := 0; j < b.c; j++ {
				out[j] += aik * bRow[j]
			}
		}
	}

	return res, nil
}

// MulT computes C = Aᵀ × B without materializing the transpose.
// Shapes: A is m×n, B is m×p, result is n×p; requires A.Rows == B.Rows.
// The k→i→j order walks both operands row-major for cache friendliness.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(m·n·p) time, O(n·p) memory.
func MulT(a, b *Dense) (*Dense, error) {
	if err := validatePair(opMulT, a, b); err != nil {
		return nil, err
	}
	if a.r != b.r {
		return nil, fmt.Errorf("%s: row counts %d vs %d: %w", opMulT, a.r, b.r, ErrDimensionMismatch)
	}
	res, err := NewDense(a.c, b.c)
	if err != nil {
		return nil, matErrorf(opMulT, err)
	}

	var aki float64
	for k := 0; k < a.r; k++ {
		aRow := a.data[k*a.c : (k+1)*a.c]
		bRow := b.data[k*b.c : (k+1)*b.c]
		for i := 0; i < a.c; i++ {
			aki = aRow[i]
			if aki == 0 {
				continue
			}
			out := res.data[i*b.c : (i+1)*b.c]
			for j := 0; j < b.c; j++ {
				out[j] += aki * bRow[j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols).
// Complexity: O(r·c) time, O(r) memory.
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, matErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, fmt.Errorf("%s: vector length %d, want %d: %w", opMatVec, len(x), a.c, ErrDimensionMismatch)
	}
	y := make([]float64, a.r)
	var sum float64
	for i := 0; i < a.r; i++ {
		row := a.data[i*a.c : (i+1)*a.c]
		sum = 0
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// MulTVec computes y = Aᵀ·x without materializing the transpose.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Rows).
// Complexity: O(r·c) time, O(c) memory.
func MulTVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, matErrorf(opMulTVec, ErrNilMatrix)
	}
	if len(x) != a.r {
		return nil, fmt.Errorf("%s: vector length %d, want %d: %w", opMulTVec, len(x), a.r, ErrDimensionMismatch)
	}
	y := make([]float64, a.c)
	for i := 0; i < a.r; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			y[j] += xi * v
		}
	}

	return y, nil
}

// AppendOnes returns [A e]: a copy of A with a trailing all-ones column.
// The trainer uses it to fold the bias term into the augmented system.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func AppendOnes(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matErrorf(opAppendOnes, ErrNilMatrix)
	}
	res, err := NewDense(a.r, a.c+1)
	if err != nil {
		return nil, matErrorf(opAppendOnes, err)
	}
	for i := 0; i < a.r; i++ {
		copy(res.data[i*res.c:i*res.c+a.c], a.data[i*a.c:(i+1)*a.c])
		res.data[i*res.c+a.c] = 1
	}

	return res, nil
}

// AddRidge returns A + ridge·I as a fresh matrix; A must be square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(r·c).
func AddRidge(a *Dense, ridge float64) (*Dense, error) {
	if a == nil {
		return nil, matErrorf(opAddRidge, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opAddRidge, a.r, a.c, ErrNonSquare)
	}
	res := a.Clone()
	for i := 0; i < res.r; i++ {
		res.data[i*res.c+i] += ridge
	}

	return res, nil
}

// AddScaled computes C = A + s·B element-wise for same-shape operands.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func AddScaled(a, b *Dense, s float64) (*Dense, error) {
	if err := validatePair(opAddScaled, a, b); err != nil {
		return nil, err
	}
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opAddScaled, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	res := a.Clone()
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] += s * b.data[idx]
	}

	return res, nil
}

// Ones returns an all-ones vector of length n (n <= 0 yields an empty slice).
func Ones(n int) []float64 {
	if n <= 0 {
		return nil
	}
	e := make([]float64, n)
	for i := range e {
		e[i] = 1
	}

	return e
}
