package kernel

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"github.com/sourcegraph/conc"

	"github.com/tsvmlab/twinsvm/mat"
)

// underflowLimit is the smallest RBF value kept; anything below clamps to
// exactly 0 so denormals never propagate into the QP.
const underflowLimit = 1e-300

// errBadSpecf wraps ErrBadSpec with the offending field description.
func errBadSpecf(format string, args ...any) error {
	return fmt.Errorf("kernel: "+format+": %w", append(args, ErrBadSpec)...)
}

// Compute produces the kernel matrix K with K[i][j] = k(a[i], b[j]).
//
// Shape: rows(a) × rows(b) for Linear and RBF; rows(a) × len(landmarks(b))
// for Rectangular, where the landmark subset of b is selected
// deterministically from (Spec.Strategy, Spec.Seed, Spec.Ratio).
//
// Stage 1 (Validate): spec parameters, non-empty inputs, equal feature width.
// Stage 2 (Prepare): reduce b to its landmarks for the rectangular kind.
// Stage 3 (Execute): fill output rows in parallel; entries are pure functions
// of their row pair, so chunks only ever write disjoint rows.
//
// Errors: ErrUnknownKind, ErrBadSpec, ErrEmptyInput,
// mat.ErrDimensionMismatch (incompatible feature widths).
//
// Complexity: O(rows(a)·rows(b)·width) time, O(rows(a)·rows(b)) memory.
func Compute(a, b [][]float64, spec Spec) (*mat.Dense, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := validateInputs(a, b); err != nil {
		return nil, err
	}

	basis := b
	if spec.Kind == Rectangular {
		var err error
		if basis, err = Landmarks(b, spec); err != nil {
			return nil, err
		}
	}

	res, err := mat.NewDense(len(a), len(basis))
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	evaluate := rowEvaluator(spec)
	fillRows(res, a, basis, evaluate)

	return res, nil
}

// Landmarks returns the rectangular-kernel landmark subset of b under spec.
// k = ceil(Ratio·rows(b)), at least 1. PrefixLandmarks takes the first k
// rows; RandomLandmarks draws k distinct rows from a source seeded with
// Spec.Seed and keeps them in their original order. The returned slice
// aliases rows of b (rows are read-only downstream).
// Errors: ErrBadSpec (non-rectangular kind or bad parameters), ErrEmptyInput.
func Landmarks(b [][]float64, spec Spec) ([][]float64, error) {
	if spec.Kind != Rectangular {
		return nil, errBadSpecf("Landmarks requires the rectangular kind, got %s", spec.Kind)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("kernel: Landmarks: %w", ErrEmptyInput)
	}

	k := int(math.Ceil(spec.Ratio * float64(len(b))))
	if k < 1 {
		k = 1
	}
	if k > len(b) {
		k = len(b)
	}

	switch spec.Strategy {
	case PrefixLandmarks:
		return b[:k], nil
	case RandomLandmarks:
		// Deterministic draw: fixed source, then restore row order so the
		// reduced basis is a stable sub-sequence of b.
		idx := rand.New(rand.NewSource(spec.Seed)).Perm(len(b))[:k]
		sort.Ints(idx)
		picked := make([][]float64, k)
		for i, j := range idx {
			picked[i] = b[j]
		}

		return picked, nil
	default:
		return nil, errBadSpecf("Strategy %d is not a known landmark strategy", int(spec.Strategy))
	}
}

// validateInputs checks both matrices are non-empty with equal feature width.
func validateInputs(a, b [][]float64) error {
	if len(a) == 0 || len(a[0]) == 0 || len(b) == 0 || len(b[0]) == 0 {
		return fmt.Errorf("kernel: Compute: %w", ErrEmptyInput)
	}
	wa, wb := len(a[0]), len(b[0])
	if wa != wb {
		return fmt.Errorf("kernel: feature widths %d vs %d: %w", wa, wb, mat.ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != wa {
			return fmt.Errorf("kernel: ragged row %d in first input: %w", i, mat.ErrDimensionMismatch)
		}
	}
	for i, row := range b {
		if len(row) != wb {
			return fmt.Errorf("kernel: ragged row %d in second input: %w", i, mat.ErrDimensionMismatch)
		}
	}

	return nil
}

// rowEvaluator returns the pairwise kernel function for spec. Validate ran
// already, so the switch is exhaustive over valid kinds.
func rowEvaluator(spec Spec) func(x, y []float64) float64 {
	if spec.Kind == Linear {
		return dot
	}
	gamma := spec.Gamma // RBF and Rectangular both evaluate the RBF kernel

	return func(x, y []float64) float64 {
		var d, sum float64
		for i := range x {
			d = x[i] - y[i]
			sum += d * d
		}
		v := math.Exp(-gamma * sum)
		if v < underflowLimit {
			return 0
		}

		return v
	}
}

// fillRows fills res row by row, splitting the row range across one worker
// per available CPU. Workers write disjoint rows of res and only read a and
// basis, so the join is the only synchronization point.
func fillRows(res *mat.Dense, a, basis [][]float64, evaluate func(x, y []float64) float64) {
	rows := len(a)
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var wg conc.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > rows {
			hi = rows
		}
		if lo >= hi {
			break
		}
		wg.Go(func() {
			for i := lo; i < hi; i++ {
				out, _ := res.Row(i) // i is in range by construction
				for j, y := range basis {
					out[j] = evaluate(a[i], y)
				}
			}
		})
	}
	wg.Wait()
}

// dot is the standard inner product between equal-length row vectors.
func dot(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}
