package tsvm_test

import (
	"fmt"

	"github.com/tsvmlab/twinsvm/kernel"
	"github.com/tsvmlab/twinsvm/tsvm"
)

// ExampleTrain fits a linear TwinSVM on two tiny clusters and labels one
// point from each side.
//
// Scenario:
//
//	class A (+1) around (−2, 0), class B (−1) around (+2, 0) — linearly
//	separable, so both training centers classify to their own class.
func ExampleTrain() {
	samplesA := [][]float64{{-2, 0}, {-2.2, 0.3}, {-1.8, -0.2}, {-2.1, -0.3}}
	samplesB := [][]float64{{+2, 0}, {+2.2, 0.3}, {+1.8, -0.2}, {+2.1, -0.3}}

	clf, err := tsvm.Train(samplesA, samplesB, kernel.DefaultSpec(), tsvm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	left, err := clf.Decide([]float64{-2, 0.1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	right, err := clf.Decide([]float64{+2, 0.1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(left, right)
	// Output:
	// 1 -1
}
