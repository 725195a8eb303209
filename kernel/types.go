// Package kernel defines the kernel specification passed to every
// evaluation: a closed set of kinds plus kind-specific parameters.
package kernel

import "errors"

// Sentinel errors returned by the kernel evaluator.
var (
	// ErrUnknownKind indicates a Kind outside the closed {Linear, RBF,
	// Rectangular} set.
	ErrUnknownKind = errors.New("kernel: unknown kernel kind")

	// ErrBadSpec indicates an invalid kind-specific parameter: Gamma <= 0 for
	// RBF-based kinds, Ratio outside (0,1] or an unknown landmark strategy
	// for the rectangular kind.
	ErrBadSpec = errors.New("kernel: invalid kernel specification")

	// ErrEmptyInput indicates that one of the feature matrices has no rows
	// or no columns.
	ErrEmptyInput = errors.New("kernel: input matrix must be non-empty")
)

// Kind selects the kernel function. The set is closed: call sites switch
// over it exhaustively and reject anything else with ErrUnknownKind.
type Kind int

const (
	// Linear is the standard inner product between row vectors.
	Linear Kind = iota

	// RBF is the Gaussian kernel exp(−γ·‖xᵢ−xⱼ‖²).
	RBF

	// Rectangular evaluates the RBF kernel against a reduced landmark subset
	// of the second input, shrinking the QP dimension downstream.
	Rectangular
)

// String returns the lowercase kind name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case RBF:
		return "rbf"
	case Rectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// Strategy selects how rectangular-kernel landmarks are chosen. The original
// formulation leaves this open, so it is pluggable and explicitly seeded
// rather than defaulted silently.
type Strategy int

const (
	// PrefixLandmarks takes the first k rows of the candidate set.
	PrefixLandmarks Strategy = iota

	// RandomLandmarks draws k distinct rows using a source seeded with
	// Spec.Seed, preserving the original row order of the chosen rows.
	RandomLandmarks
)

// Spec is an immutable kernel specification. A Spec value travels with every
// call that needs kernel parameters; there is no process-wide configuration.
//
// Fields:
//   - Kind     — kernel function (Linear, RBF, Rectangular).
//   - Gamma    — RBF width γ; required > 0 for RBF and Rectangular.
//   - Ratio    — rectangular landmark ratio in (0,1]; k = ceil(Ratio·rows).
//   - Strategy — rectangular landmark selection policy.
//   - Seed     — seed for RandomLandmarks; ignored by PrefixLandmarks.
type Spec struct {
	Kind     Kind
	Gamma    float64
	Ratio    float64
	Strategy Strategy
	Seed     int64
}

// DefaultSpec returns a linear-kernel specification.
func DefaultSpec() Spec {
	return Spec{Kind: Linear}
}

// Validate checks the kind and its parameters, returning ErrUnknownKind or
// ErrBadSpec (wrapped with the offending field) on violation.
func (s Spec) Validate() error {
	switch s.Kind {
	case Linear:
		return nil
	case RBF:
		if s.Gamma <= 0 {
			return errBadSpecf("Gamma %v must be > 0", s.Gamma)
		}

		return nil
	case Rectangular:
		if s.Gamma <= 0 {
			return errBadSpecf("Gamma %v must be > 0", s.Gamma)
		}
		if s.Ratio <= 0 || s.Ratio > 1 {
			return errBadSpecf("Ratio %v must be in (0,1]", s.Ratio)
		}
		if s.Strategy != PrefixLandmarks && s.Strategy != RandomLandmarks {
			return errBadSpecf("Strategy %d is not a known landmark strategy", int(s.Strategy))
		}

		return nil
	default:
		return ErrUnknownKind
	}
}
