package tsvm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsvmlab/twinsvm/kernel"
	"github.com/tsvmlab/twinsvm/mat"
	"github.com/tsvmlab/twinsvm/tsvm"
)

// trainSeparable is a helper producing a trained linear classifier.
func trainSeparable(t *testing.T) *tsvm.BinaryClassifier {
	t.Helper()
	a, b := separableClasses()
	clf, err := tsvm.Train(a, b, kernel.DefaultSpec(), tsvm.DefaultOptions())
	require.NoError(t, err)

	return clf
}

// TestClassifier_ScorePair verifies Score returns non-negative distances and
// the side closer to class A reports d1 < d2.
func TestClassifier_ScorePair(t *testing.T) {
	clf := trainSeparable(t)

	d1, d2, err := clf.Score([]float64{-2, 0})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d1, 0.0)
	assert.GreaterOrEqual(t, d2, 0.0)
	assert.Less(t, d1, d2, "class-A center must lie closer to plane 1")

	d1, d2, err = clf.Score([]float64{+2, 0})
	require.NoError(t, err)
	assert.Less(t, d2, d1, "class-B center must lie closer to plane 2")
}

// TestClassifier_ScoreWidthGuard rejects inputs of the wrong feature width.
func TestClassifier_ScoreWidthGuard(t *testing.T) {
	clf := trainSeparable(t)

	_, _, err := clf.Score([]float64{1, 2, 3})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)

	_, err = clf.Decide([]float64{1})
	assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

// TestClassifier_PlaneAccessor checks index bounds and immutability of the
// returned value.
func TestClassifier_PlaneAccessor(t *testing.T) {
	clf := trainSeparable(t)

	p, err := clf.Plane(0)
	require.NoError(t, err)
	assert.NotEmpty(t, p.W)
	assert.Positive(t, p.Norm())

	_, err = clf.Plane(2)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = clf.Plane(-1)
	assert.ErrorIs(t, err, mat.ErrOutOfRange)
}

// TestClassifier_BasisIsCopied ensures mutating the returned basis cannot
// corrupt later predictions.
func TestClassifier_BasisIsCopied(t *testing.T) {
	clf := trainSeparable(t)

	before, err := clf.Decide([]float64{-2, 0})
	require.NoError(t, err)

	basis := clf.Basis()
	for _, row := range basis {
		for j := range row {
			row[j] = 1e9
		}
	}

	after, err := clf.Decide([]float64{-2, 0})
	require.NoError(t, err)
	assert.Equal(t, before, after, "mutating the returned basis must not affect predictions")
}

// TestClassifier_SpecRoundTrip confirms the stored spec is the one Train was
// called with, including rectangular parameters.
func TestClassifier_SpecRoundTrip(t *testing.T) {
	a, b := separableClasses()
	spec := kernel.Spec{
		Kind:     kernel.Rectangular,
		Gamma:    0.5,
		Ratio:    0.75,
		Strategy: kernel.RandomLandmarks,
		Seed:     7,
	}

	clf, err := tsvm.Train(a, b, spec, tsvm.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, spec, clf.Spec())
}
