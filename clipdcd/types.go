// Package clipdcd defines options and results for the clipDCD QP solver.
package clipdcd

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the solver.
var (
	// ErrInvalidParameter indicates Bound <= 0, Tolerance <= 0 or MaxIter <= 0.
	// The wrapped message names the offending parameter.
	ErrInvalidParameter = errors.New("clipdcd: invalid parameter")

	// ErrNilMatrix indicates a nil Hessian.
	ErrNilMatrix = errors.New("clipdcd: nil matrix")
)

// Default solver parameters.
const (
	// DefaultBound is the default box upper bound C.
	DefaultBound = 1.0

	// DefaultTolerance is the default stopping tolerance ε on the total
	// absolute coordinate change of one full pass.
	DefaultTolerance = 1e-5

	// DefaultMaxIter is the default cap on full passes.
	DefaultMaxIter = 5000

	// diagEps guards the division by Hᵢᵢ: coordinates whose diagonal entry
	// falls below it are skipped for the pass.
	diagEps = 1e-12
)

// Options configures one Solve call.
//
// Fields:
//   - Bound     — box upper bound C (> 0); every αᵢ stays in [0, Bound].
//   - Tolerance — stopping tolerance ε (> 0) on the per-pass absolute change.
//   - MaxIter   — cap on full coordinate passes (> 0). Hitting the cap is
//     not an error; see Result.Converged.
//   - Log       — diagnostics sink; defaults to a no-op logger. The solver
//     emits one Debug event per call, never anything louder.
type Options struct {
	Bound     float64
	Tolerance float64
	MaxIter   int
	Log       zerolog.Logger
}

// DefaultOptions returns the standard solver configuration.
func DefaultOptions() Options {
	return Options{
		Bound:     DefaultBound,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Log:       zerolog.Nop(),
	}
}

// validate reports ErrInvalidParameter naming the first offending field.
func (o Options) validate() error {
	if o.Bound <= 0 {
		return wrapParam("Bound", o.Bound)
	}
	if o.Tolerance <= 0 {
		return wrapParam("Tolerance", o.Tolerance)
	}
	if o.MaxIter <= 0 {
		return wrapParam("MaxIter", float64(o.MaxIter))
	}

	return nil
}

// Result carries the solver outcome.
//
//   - Alpha      — the dual vector; feasible (within [0, Bound]) at either
//     terminal state.
//   - Converged  — true when the tolerance criterion was met, false when the
//     pass cap was hit. Diagnostic only: Alpha is valid either way.
//   - Iterations — number of full passes executed.
//   - Delta      — total absolute coordinate change of the final pass.
type Result struct {
	Alpha      []float64
	Converged  bool
	Iterations int
	Delta      float64
}
