package clipdcd

import (
	"fmt"

	"github.com/tsvmlab/twinsvm/mat"
)

// wrapParam attaches the offending parameter to ErrInvalidParameter.
func wrapParam(name string, v float64) error {
	return fmt.Errorf("Solve: %s = %v must be > 0: %w", name, v, ErrInvalidParameter)
}

// Solve minimizes ½·αᵀHα − eᵀα over the box [0, opts.Bound]ⁿ.
//
// Stage 1 (Validate): h non-nil square, Bound/Tolerance/MaxIter positive.
// Stage 2 (Prepare): α = 0ⁿ and the cached product q = Hα = 0ⁿ.
// Stage 3 (Execute): full passes over coordinates 0..n−1 in fixed order;
// each accepted update is clipped into the box immediately and folded into
// q with one axpy over row i (H is symmetric, so row i is column i).
// Stage 4 (Finalize): stop when a pass moves less than Tolerance in total
// absolute change, or after MaxIter passes; both return the current α.
//
// The returned Result is never nil on success: Alpha is feasible at either
// terminal state and Converged only records which criterion fired.
//
// Errors: ErrNilMatrix, mat.ErrNonSquare, ErrInvalidParameter.
// Complexity: O(n²) per pass, O(n) extra memory.
func Solve(h *mat.Dense, opts Options) (*Result, error) {
	// Stage 1: Validate
	if h == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilMatrix)
	}
	n := h.Rows()
	if n != h.Cols() {
		return nil, fmt.Errorf("Solve: %dx%d: %w", n, h.Cols(), mat.ErrNonSquare)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Stage 2: Prepare convergence state
	alpha := make([]float64, n) // current dual vector, starts at 0
	q := make([]float64, n)     // cached q = H·α, starts at 0
	c := opts.Bound

	// Stage 3+4: Execute passes until the tolerance or the cap fires
	var (
		pass      int
		delta     float64 // total |change| of the current pass
		g         float64 // partial gradient g_i = q[i] - 1
		cand, d   float64 // clipped candidate value and its delta
		converged bool
	)
	for pass = 1; pass <= opts.MaxIter; pass++ {
		delta = 0
		for i := 0; i < n; i++ {
			row, _ := h.Row(i) // i in [0,n) by loop bounds
			hii := row[i]
			if hii < diagEps {
				continue // degenerate diagonal, no safe step for this coordinate
			}
			g = q[i] - 1
			cand = alpha[i] - g/hii
			// Clip into the box [0, C]
			if cand < 0 {
				cand = 0
			} else if cand > c {
				cand = c
			}
			d = cand - alpha[i]
			if d == 0 {
				continue
			}
			alpha[i] = cand
			// Incremental cache update: q += d·H[i,:] keeps the pass at O(n²)
			for j, hij := range row {
				q[j] += d * hij
			}
			if d < 0 {
				delta -= d
			} else {
				delta += d
			}
		}
		if delta < opts.Tolerance {
			converged = true
			break
		}
	}
	if pass > opts.MaxIter {
		pass = opts.MaxIter
	}

	opts.Log.Debug().
		Int("n", n).
		Int("iterations", pass).
		Bool("converged", converged).
		Float64("delta", delta).
		Msg("clipdcd solve finished")

	return &Result{Alpha: alpha, Converged: converged, Iterations: pass, Delta: delta}, nil
}

// Objective evaluates the dual objective ½·αᵀHα − eᵀα for a given α.
// Used for diagnostics and by tests asserting the per-pass descent property.
// Errors: ErrNilMatrix, mat.ErrNonSquare, mat.ErrDimensionMismatch.
// Complexity: O(n²).
func Objective(h *mat.Dense, alpha []float64) (float64, error) {
	if h == nil {
		return 0, fmt.Errorf("Objective: %w", ErrNilMatrix)
	}
	if h.Rows() != h.Cols() {
		return 0, fmt.Errorf("Objective: %dx%d: %w", h.Rows(), h.Cols(), mat.ErrNonSquare)
	}
	q, err := mat.MatVec(h, alpha)
	if err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}
	var quad, lin float64
	for i, a := range alpha {
		quad += a * q[i]
		lin += a
	}

	return 0.5*quad - lin, nil
}
