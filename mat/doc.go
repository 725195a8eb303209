// Package mat provides the dense linear-algebra primitives the TwinSVM
// training core is built on: row-major float64 matrices, the handful of
// products the trainer needs, and a ridge-regularized LU solve.
//
// Design rules, enforced across the package:
//
//   - Fail fast: every public operation validates shapes up front and
//     returns a package sentinel error (matched via errors.Is), never panics
//     on user input.
//   - Determinism: all loops run in fixed row-major order; there is no
//     pivoting, no map iteration, no randomness. Identical inputs produce
//     bit-identical outputs.
//   - One allocation per result: operands are never mutated unless the
//     method name says so (AddRidge, AddScaled write into a fresh copy or
//     receiver as documented).
//
// The solve path (Solve, SolveMulti) uses Doolittle LU factorization with
// forward/backward substitution. A non-negative ridge term is added to the
// diagonal before factorization; a vanishing pivot afterwards reports
// ErrSingular. Complexity: O(n³) for the factorization, O(n²) per
// right-hand side.
package mat
