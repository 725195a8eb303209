package clipdcd_test

import (
	"fmt"

	"github.com/tsvmlab/twinsvm/clipdcd"
	"github.com/tsvmlab/twinsvm/mat"
)

// ExampleSolve demonstrates solving a tiny diagonal dual QP.
//
// With H = diag(2, 2) the unconstrained coordinate optimum is α = (0.5, 0.5),
// inside the default box [0, 1], so the solver converges in two passes.
func ExampleSolve() {
	h, err := mat.FromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := clipdcd.Solve(h, clipdcd.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Alpha, res.Converged)
	// Output:
	// [0.5 0.5] true
}
