package tsvm

import (
	"fmt"

	"github.com/tsvmlab/twinsvm/kernel"
	"github.com/tsvmlab/twinsvm/mat"
)

// BinaryClassifier is the immutable value object produced by Train: two
// hyperplanes, the kernel specification they were trained under, and the
// basis rows the kernel must be evaluated against at prediction time.
// External orchestration (multi-class wrappers, persistence) consumes it as
// a whole; nothing in it is mutated after construction.
type BinaryClassifier struct {
	planes    [2]Hyperplane
	spec      kernel.Spec // the spec Train was called with
	scoreSpec kernel.Spec // resolved spec used against the stored basis
	basis     [][]float64
	width     int // feature width accepted by Score/Decide
	norms     [2]float64
}

// newClassifier deep-copies the basis so later caller-side mutation of the
// training data cannot corrupt predictions.
func newClassifier(p1, p2 Hyperplane, scoreSpec, spec kernel.Spec, basis [][]float64, width int) *BinaryClassifier {
	owned := make([][]float64, len(basis))
	for i, row := range basis {
		owned[i] = append([]float64(nil), row...)
	}
	clf := &BinaryClassifier{
		planes:    [2]Hyperplane{p1, p2},
		spec:      spec,
		scoreSpec: scoreSpec,
		basis:     owned,
		width:     width,
	}
	for i, p := range clf.planes {
		clf.norms[i] = p.Norm()
		if clf.norms[i] == 0 {
			// Degenerate all-zero plane: fall back to raw |f(x)| so Score
			// stays finite.
			clf.norms[i] = 1
		}
	}

	return clf
}

// Plane returns hyperplane i (0 = class +1, 1 = class −1).
// Errors: mat.ErrOutOfRange on an invalid index.
func (c *BinaryClassifier) Plane(i int) (Hyperplane, error) {
	if i < 0 || i > 1 {
		return Hyperplane{}, fmt.Errorf("Plane(%d): %w", i, mat.ErrOutOfRange)
	}

	return c.planes[i], nil
}

// Spec returns the kernel specification the classifier was trained with.
func (c *BinaryClassifier) Spec() kernel.Spec { return c.spec }

// Basis returns a copy of the kernel basis rows (the training set, or its
// landmark subset for rectangular kernels).
func (c *BinaryClassifier) Basis() [][]float64 {
	out := make([][]float64, len(c.basis))
	for i, row := range c.basis {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Score returns the perpendicular distances from x to both hyperplanes:
// d_k = |φ(x)·W_k + Bias_k| / ‖W_k‖, with φ(x) the kernel row of x against
// the stored basis. Downstream multi-class aggregation consumes the raw pair.
// Errors: mat.ErrDimensionMismatch when len(x) differs from the training
// feature width.
func (c *BinaryClassifier) Score(x []float64) (d1, d2 float64, err error) {
	if len(x) != c.width {
		return 0, 0, fmt.Errorf("Score: input width %d, want %d: %w", len(x), c.width, mat.ErrDimensionMismatch)
	}
	k, err := kernel.Compute([][]float64{x}, c.basis, c.scoreSpec)
	if err != nil {
		return 0, 0, fmt.Errorf("Score: %w", err)
	}
	phi, err := k.Row(0)
	if err != nil {
		return 0, 0, fmt.Errorf("Score: %w", err)
	}

	for i, p := range c.planes {
		f := p.Bias
		for j, w := range p.W {
			f += phi[j] * w
		}
		if f < 0 {
			f = -f
		}
		if i == 0 {
			d1 = f / c.norms[0]
		} else {
			d2 = f / c.norms[1]
		}
	}

	return d1, d2, nil
}

// Decide assigns x to the class whose hyperplane lies closer: +1 when plane 1
// (fitted to samplesA) is at most as far as plane 2, −1 otherwise.
// Errors: as Score.
func (c *BinaryClassifier) Decide(x []float64) (int, error) {
	d1, d2, err := c.Score(x)
	if err != nil {
		return 0, fmt.Errorf("Decide: %w", err)
	}
	if d1 <= d2 {
		return +1, nil
	}

	return -1, nil
}

// DecideAll labels every row of xs, stopping at the first failure.
// Convenience for the multi-class orchestration boundary.
func (c *BinaryClassifier) DecideAll(xs [][]float64) ([]int, error) {
	labels := make([]int, len(xs))
	for i, x := range xs {
		label, err := c.Decide(x)
		if err != nil {
			return nil, fmt.Errorf("DecideAll: row %d: %w", i, err)
		}
		labels[i] = label
	}

	return labels, nil
}
