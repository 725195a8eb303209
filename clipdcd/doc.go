// Package clipdcd solves the box-constrained dual quadratic programs at the
// heart of TwinSVM training with clipped dual coordinate descent (clipDCD).
//
// 🚀 The problem:
//
//	minimize   ½·αᵀHα − eᵀα
//	subject to 0 ≤ αᵢ ≤ C          for every coordinate i
//
// with H dense and symmetric. H is expected to be (approximately) positive
// semi-definite — the trainer guarantees this with a small ridge term — but
// the solver runs regardless; only the convergence guarantee depends on it.
//
// ✨ Algorithm outline (one full pass):
//  1. Visit coordinates 0..n−1 in fixed order (reproducibility by design).
//  2. For coordinate i, read the partial gradient gᵢ = (Hα)ᵢ − 1 from the
//     incrementally maintained cache of Hα.
//  3. Take the unconstrained single-coordinate optimum αᵢ − gᵢ/Hᵢᵢ and clip
//     it into [0, C]; coordinates with a vanishing Hᵢᵢ are skipped.
//  4. Fold the change back into the Hα cache with one axpy over row i.
//
// A pass costs O(n²); recomputing Hα from scratch each update would cost
// O(n³) and is deliberately avoided. The solver stops once the total
// absolute coordinate change of a pass drops below the tolerance, or when
// the pass cap is reached. Both outcomes return the current α — every
// update is clipped immediately, so α is feasible at all times — and
// non-convergence is reported through Result.Converged, never as an error.
//
// ⚙️ Usage:
//
//	opts := clipdcd.DefaultOptions()
//	opts.Bound = 2.0
//	res, err := clipdcd.Solve(h, opts)
//	// res.Alpha is feasible even when res.Converged is false.
//
// Determinism: identical (H, Bound, Tolerance, MaxIter) produce bit-identical
// α across calls.
package clipdcd
