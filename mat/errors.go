// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. If context is essential, wrap with fmt.Errorf("Op: %w", ErrX);
// callers still match with errors.Is.

package mat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when FromRows receives an empty or ragged row set.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they do not panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrSingular is returned when a vanishing pivot is encountered during the
	// LU solve (intentionally non-pivoting for determinism). Adding a positive
	// ridge term upstream is the supported remedy.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrBadRidge indicates a negative or non-finite ridge term.
	ErrBadRidge = errors.New("mat: ridge must be finite and >= 0")
)
