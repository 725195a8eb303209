package tsvm

import (
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/tsvmlab/twinsvm/clipdcd"
	"github.com/tsvmlab/twinsvm/kernel"
	"github.com/tsvmlab/twinsvm/mat"
)

// wrapParam attaches the offending parameter to ErrInvalidParameter.
func wrapParam(name string, v float64) error {
	return fmt.Errorf("Train: %s = %v must be > 0: %w", name, v, ErrInvalidParameter)
}

// Train fits a binary TwinSVM classifier on the two class sample sets.
//
// Stage 1 (Validate): options, kernel spec, non-empty classes; feature-width
// consistency is enforced by the kernel evaluator.
// Stage 2 (Basis): the shared kernel basis is A followed by B; a rectangular
// spec reduces it once through kernel.Landmarks, and that reduced basis is
// shared by both classes and by scoring.
// Stage 3 (Kernels): Kₐ = K(A, basis) and K_b = K(B, basis) computed in
// parallel, then augmented to S = [Kₐ e] and R = [K_b e].
// Stage 4 (Solve): the two per-class subproblems run on parallel goroutines
// over read-only shared S, R and their Gram matrices; each owns its dual
// vector and scratch. Standard solves a clipDCD dual QP per plane,
// LeastSquares a single regularized linear solve per plane.
// Stage 5 (Package): u_k splits into (W_k, Bias_k); the classifier keeps the
// basis and kernel spec it must score against.
//
// Dual-solver non-convergence within the pass cap is not an error: it is
// logged and the best-effort feasible solution is used.
//
// Errors: ErrInvalidParameter, ErrUnknownVariant, ErrEmptyClass,
// kernel.ErrUnknownKind, kernel.ErrBadSpec, mat.ErrDimensionMismatch,
// mat.ErrSingular.
func Train(samplesA, samplesB [][]float64, spec kernel.Spec, opts Options) (*BinaryClassifier, error) {
	// Stage 1: Validate
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(samplesA) == 0 {
		return nil, fmt.Errorf("Train: class A: %w", ErrEmptyClass)
	}
	if len(samplesB) == 0 {
		return nil, fmt.Errorf("Train: class B: %w", ErrEmptyClass)
	}

	// Stage 2: Shared basis (possibly landmark-reduced)
	basis := make([][]float64, 0, len(samplesA)+len(samplesB))
	basis = append(basis, samplesA...)
	basis = append(basis, samplesB...)
	scoreSpec := spec
	if spec.Kind == kernel.Rectangular {
		var err error
		if basis, err = kernel.Landmarks(basis, spec); err != nil {
			return nil, fmt.Errorf("Train: %w", err)
		}
		// The basis is already reduced; scoring evaluates the base RBF
		// kernel against it directly.
		scoreSpec = kernel.Spec{Kind: kernel.RBF, Gamma: spec.Gamma}
	}

	opts.Log.Debug().
		Str("variant", opts.Variant.String()).
		Str("kernel", spec.Kind.String()).
		Int("class_a", len(samplesA)).
		Int("class_b", len(samplesB)).
		Int("basis", len(basis)).
		Msg("tsvm train started")

	// Stage 3: Kernel matrices, one goroutine per class
	var (
		ka, kb       *mat.Dense
		kaErr, kbErr error
	)
	var kwg conc.WaitGroup
	kwg.Go(func() { ka, kaErr = kernel.Compute(samplesA, basis, scoreSpec) })
	kwg.Go(func() { kb, kbErr = kernel.Compute(samplesB, basis, scoreSpec) })
	kwg.Wait()
	if kaErr != nil {
		return nil, fmt.Errorf("Train: class A kernel: %w", kaErr)
	}
	if kbErr != nil {
		return nil, fmt.Errorf("Train: class B kernel: %w", kbErr)
	}

	s, err := mat.AppendOnes(ka)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}
	r, err := mat.AppendOnes(kb)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}

	// Shared read-only precomputations for both plane solves.
	sts, err := mat.MulT(s, s)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}
	rtr, err := mat.MulT(r, r)
	if err != nil {
		return nil, fmt.Errorf("Train: %w", err)
	}

	// Stage 4: Per-class solves in parallel (join is the only sync point)
	var (
		u1, u2     []float64
		err1, err2 error
	)
	var wg conc.WaitGroup
	switch opts.Variant {
	case Standard:
		st, terr := mat.Transpose(s)
		if terr != nil {
			return nil, fmt.Errorf("Train: %w", terr)
		}
		rt, terr := mat.Transpose(r)
		if terr != nil {
			return nil, fmt.Errorf("Train: %w", terr)
		}
		wg.Go(func() {
			u1, err1 = solveStandardPlane(sts, r, rt, opts.C1, opts, "plane1")
			negate(u1)
		})
		wg.Go(func() {
			u2, err2 = solveStandardPlane(rtr, s, st, opts.C2, opts, "plane2")
		})
	case LeastSquares:
		wg.Go(func() {
			u1, err1 = solveLeastSquaresPlane(sts, rtr, r, opts.C1, opts.Ridge)
			negate(u1)
		})
		wg.Go(func() {
			u2, err2 = solveLeastSquaresPlane(rtr, sts, s, opts.C2, opts.Ridge)
		})
	}
	wg.Wait()
	if err1 != nil {
		return nil, fmt.Errorf("Train: plane 1: %w", err1)
	}
	if err2 != nil {
		return nil, fmt.Errorf("Train: plane 2: %w", err2)
	}

	// Stage 5: Package hyperplanes and classifier
	clf := newClassifier(splitAugmented(u1), splitAugmented(u2), scoreSpec, spec, basis, len(basis[0]))

	opts.Log.Debug().
		Int("plane_dim", len(clf.planes[0].W)).
		Msg("tsvm train finished")

	return clf, nil
}

// solveStandardPlane solves one class's dual QP and recovers the augmented
// plane vector u = ±(ownGram + ridge·I)⁻¹·otherᵀ·α. The caller fixes the
// sign. ownGram is the Gram matrix of the plane's own augmented class
// matrix; other/otherT belong to the opposite class whose constraints bound
// the dual variables by c.
func solveStandardPlane(ownGram, other, otherT *mat.Dense, c float64, opts Options, tag string) ([]float64, error) {
	// X = (ownGram + ridge·I)⁻¹ · otherᵀ, reused for both H and u.
	x, err := mat.SolveMulti(ownGram, otherT, opts.Ridge)
	if err != nil {
		return nil, err
	}
	// H = other · X is the dual Hessian of this plane's QP.
	h, err := mat.Mul(other, x)
	if err != nil {
		return nil, err
	}
	res, err := clipdcd.Solve(h, clipdcd.Options{
		Bound:     c,
		Tolerance: opts.Tolerance,
		MaxIter:   opts.MaxIter,
		Log:       opts.Log,
	})
	if err != nil {
		return nil, err
	}
	if !res.Converged {
		// Feasible best-effort α is still usable; surface it for diagnosis.
		opts.Log.Warn().
			Str("plane", tag).
			Int("iterations", res.Iterations).
			Float64("delta", res.Delta).
			Msg("dual solver hit the pass cap")
	}

	return mat.MatVec(x, res.Alpha)
}

// solveLeastSquaresPlane computes the closed-form least-squares plane
// u = ±(otherGram + (1/c)·ownGram + ridge·I)⁻¹·otherᵀ·e. The caller fixes
// the sign.
func solveLeastSquaresPlane(ownGram, otherGram, other *mat.Dense, c float64, ridge float64) ([]float64, error) {
	m, err := mat.AddScaled(otherGram, ownGram, 1/c)
	if err != nil {
		return nil, err
	}
	rhs, err := mat.MulTVec(other, mat.Ones(other.Rows()))
	if err != nil {
		return nil, err
	}

	return mat.Solve(m, rhs, ridge)
}

// splitAugmented splits an augmented solution vector into (W, Bias).
func splitAugmented(u []float64) Hyperplane {
	last := len(u) - 1

	return Hyperplane{W: u[:last], Bias: u[last]}
}

// negate flips the sign of every component in place.
func negate(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}
