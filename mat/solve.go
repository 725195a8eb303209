// SPDX-License-Identifier: MIT
// Package mat - ridge-regularized linear solve via Doolittle LU.
// The factorization is intentionally non-pivoting: the TwinSVM trainer always
// adds a positive ridge term to a Gram-type (symmetric PSD) system first, and
// a fixed elimination order keeps results bit-identical across runs.

package mat

import (
	"fmt"
	"math"
)

// pivotEps is the magnitude below which a pivot is treated as vanished.
const pivotEps = 1e-12

// luFactor performs an in-place Doolittle LU factorization of a.
// After return, a holds U on and above the diagonal and the sub-diagonal
// multipliers of L below it (L's unit diagonal is implicit).
// Stage 1 (Execute): for each pivot row i, finish U's row i, then eliminate
// column i of the remaining rows.
// Stage 2 (Finalize): report ErrSingular on a vanishing pivot.
// Complexity: O(n³) time, O(1) extra memory.
func luFactor(a *Dense) error {
	n := a.r
	var pivot, factor float64
	for i := 0; i < n; i++ {
		pivot = a.data[i*n+i]
		if math.Abs(pivot) < pivotEps {
			return fmt.Errorf("lu: vanishing pivot at %d: %w", i, ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			factor = a.data[j*n+i] / pivot
			a.data[j*n+i] = factor // store L[j][i]
			if factor == 0 {
				continue
			}
			uRow := a.data[i*n : (i+1)*n]
			jRow := a.data[j*n : (j+1)*n]
			for k := i + 1; k < n; k++ {
				jRow[k] -= factor * uRow[k]
			}
		}
	}

	return nil
}

// luSolveInto solves L·U·x = b for one right-hand side using the packed
// factors produced by luFactor, writing the solution into x.
// Forward substitution handles L (unit diagonal), backward substitution U.
// Complexity: O(n²).
func luSolveInto(lu *Dense, b, x []float64) {
	n := lu.r
	var sum float64
	// Forward substitution: L·y = b (y stored in x)
	for i := 0; i < n; i++ {
		sum = 0
		row := lu.data[i*n : (i+1)*n]
		for k := 0; k < i; k++ {
			sum += row[k] * x[k]
		}
		x[i] = b[i] - sum
	}
	// Backward substitution: U·x = y
	for i := n - 1; i >= 0; i-- {
		sum = 0
		row := lu.data[i*n : (i+1)*n]
		for k := i + 1; k < n; k++ {
			sum += row[k] * x[k]
		}
		x[i] = (x[i] - sum) / row[i]
	}
}

// validateSolve checks the shared preconditions of Solve and SolveMulti.
func validateSolve(op string, a *Dense, ridge float64) error {
	if a == nil {
		return matErrorf(op, ErrNilMatrix)
	}
	if a.r != a.c {
		return fmt.Errorf("%s: %dx%d: %w", op, a.r, a.c, ErrNonSquare)
	}
	if ridge < 0 || math.IsNaN(ridge) || math.IsInf(ridge, 0) {
		return fmt.Errorf("%s: ridge %v: %w", op, ridge, ErrBadRidge)
	}

	return nil
}

// Solve solves (A + ridge·I)·x = b and returns x.
// Stage 1 (Validate): A non-nil square, len(b) == n, ridge finite and >= 0.
// Stage 2 (Prepare): copy A and shift its diagonal by ridge; A is not mutated.
// Stage 3 (Execute): Doolittle LU, then forward/backward substitution.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
// ErrSingular (vanishing pivot, e.g. rank-deficient A with ridge == 0).
// Complexity: O(n³) time, O(n²) memory for the factor copy.
func Solve(a *Dense, b []float64, ridge float64) ([]float64, error) {
	const op = "Solve"
	if err := validateSolve(op, a, ridge); err != nil {
		return nil, err
	}
	if len(b) != a.r {
		return nil, fmt.Errorf("%s: rhs length %d, want %d: %w", op, len(b), a.r, ErrDimensionMismatch)
	}

	lu := a.Clone()
	for i := 0; i < lu.r; i++ {
		lu.data[i*lu.c+i] += ridge
	}
	if err := luFactor(lu); err != nil {
		return nil, matErrorf(op, err)
	}

	x := make([]float64, a.r)
	luSolveInto(lu, b, x)

	return x, nil
}

// SolveMulti solves (A + ridge·I)·X = B column by column and returns X.
// One factorization is shared by every right-hand column; the hyperplane
// builder uses this to form (SᵀS + εI)⁻¹Rᵀ without computing an inverse.
// Errors: as Solve, plus ErrDimensionMismatch when B.Rows != A.Rows.
// Complexity: O(n³ + n²·p) time for p right-hand columns.
func SolveMulti(a, b *Dense, ridge float64) (*Dense, error) {
	const op = "SolveMulti"
	if err := validateSolve(op, a, ridge); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, matErrorf(op, ErrNilMatrix)
	}
	if b.r != a.r {
		return nil, fmt.Errorf("%s: rhs rows %d, want %d: %w", op, b.r, a.r, ErrDimensionMismatch)
	}

	lu := a.Clone()
	for i := 0; i < lu.r; i++ {
		lu.data[i*lu.c+i] += ridge
	}
	if err := luFactor(lu); err != nil {
		return nil, matErrorf(op, err)
	}

	res, err := NewDense(b.r, b.c)
	if err != nil {
		return nil, matErrorf(op, err)
	}
	rhs := make([]float64, b.r) // scratch for one column
	x := make([]float64, b.r)
	for col := 0; col < b.c; col++ {
		for i := 0; i < b.r; i++ {
			rhs[i] = b.data[i*b.c+col]
		}
		luSolveInto(lu, rhs, x)
		for i := 0; i < b.r; i++ {
			res.data[i*res.c+col] = x[i]
		}
	}

	return res, nil
}
