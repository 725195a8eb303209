package clipdcd_test

import (
	"testing"

	"github.com/tsvmlab/twinsvm/clipdcd"
	"github.com/tsvmlab/twinsvm/mat"
)

// benchmarkSolve runs the solver on a deterministic PSD Hessian of size n.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = float64((i*13+j*5)%17) / 17.0
		}
	}
	base, err := mat.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}
	btb, err := mat.MulT(base, base)
	if err != nil {
		b.Fatalf("MulT failed: %v", err)
	}
	h, err := mat.AddRidge(btb, 0.1)
	if err != nil {
		b.Fatalf("AddRidge failed: %v", err)
	}
	opts := clipdcd.DefaultOptions()
	opts.MaxIter = 100

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := clipdcd.Solve(h, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 50-variable dual QP.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 50) }

// BenchmarkSolve_Medium benchmarks a 200-variable dual QP.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 200) }

// BenchmarkSolve_Large benchmarks a 500-variable dual QP.
func BenchmarkSolve_Large(b *testing.B) { benchmarkSolve(b, 500) }
