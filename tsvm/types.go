// Package tsvm defines training options, variants and the hyperplane type.
package tsvm

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the trainer and classifier.
var (
	// ErrInvalidParameter indicates C1, C2, Tolerance, MaxIter or Ridge
	// outside its valid range. The wrapped message names the parameter.
	ErrInvalidParameter = errors.New("tsvm: invalid parameter")

	// ErrUnknownVariant indicates a Variant outside {Standard, LeastSquares}.
	ErrUnknownVariant = errors.New("tsvm: unknown variant")

	// ErrEmptyClass indicates that one of the two sample sets has no rows.
	ErrEmptyClass = errors.New("tsvm: class sample set must be non-empty")
)

// Variant selects the TwinSVM formulation.
type Variant int

const (
	// Standard solves one box-constrained dual QP per class with clipDCD,
	// then recovers each hyperplane through a regularized linear solve.
	Standard Variant = iota

	// LeastSquares replaces the inequality constraints with equalities,
	// reducing each class subproblem to a single closed-form ridge solve.
	// No dual solver runs in this variant.
	LeastSquares
)

// String returns the lowercase variant name for logs and error messages.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case LeastSquares:
		return "least-squares"
	default:
		return "unknown"
	}
}

// Default training parameters.
const (
	// DefaultPenalty is the default value for both penalty weights C1 and C2.
	DefaultPenalty = 1.0

	// DefaultTolerance is the default dual-solver stopping tolerance.
	DefaultTolerance = 1e-5

	// DefaultMaxIter is the default dual-solver pass cap.
	DefaultMaxIter = 5000

	// DefaultRidge is the diagonal shift applied before every linear solve.
	// Small enough not to bias the planes, large enough to keep Gram-type
	// systems invertible.
	DefaultRidge = 1e-4
)

// Options configures one Train call.
//
// Fields:
//   - C1, C2    — penalty weights (> 0); C1 bounds the dual variables of the
//     class-B constraints on plane 1, C2 the class-A constraints on plane 2.
//   - Variant   — Standard or LeastSquares.
//   - Tolerance — clipDCD stopping tolerance ε (> 0); Standard variant only.
//   - MaxIter   — clipDCD pass cap (> 0); Standard variant only.
//   - Ridge     — diagonal regularization (> 0) for every linear solve.
//   - Log       — diagnostics sink; defaults to a no-op logger.
type Options struct {
	C1        float64
	C2        float64
	Variant   Variant
	Tolerance float64
	MaxIter   int
	Ridge     float64
	Log       zerolog.Logger
}

// DefaultOptions returns the standard training configuration.
func DefaultOptions() Options {
	return Options{
		C1:        DefaultPenalty,
		C2:        DefaultPenalty,
		Variant:   Standard,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Ridge:     DefaultRidge,
		Log:       zerolog.Nop(),
	}
}

// validate reports the first violated parameter constraint.
func (o Options) validate() error {
	switch {
	case o.C1 <= 0:
		return wrapParam("C1", o.C1)
	case o.C2 <= 0:
		return wrapParam("C2", o.C2)
	case o.Tolerance <= 0:
		return wrapParam("Tolerance", o.Tolerance)
	case o.MaxIter <= 0:
		return wrapParam("MaxIter", float64(o.MaxIter))
	case o.Ridge <= 0:
		return wrapParam("Ridge", o.Ridge)
	}
	if o.Variant != Standard && o.Variant != LeastSquares {
		return ErrUnknownVariant
	}

	return nil
}

// Hyperplane is one of the two fitted planes: f(x) = φ(x)·W + Bias, with
// φ(x) the kernel row of x against the classifier basis. Immutable after
// construction; the decision function only reads it.
type Hyperplane struct {
	W    []float64
	Bias float64
}

// Norm returns the Euclidean norm of W, used to normalize perpendicular
// distances. Complexity: O(len(W)).
func (h Hyperplane) Norm() float64 {
	var sum float64
	for _, w := range h.W {
		sum += w * w
	}

	return math.Sqrt(sum)
}
