// Package twinsvm is a fast optimization core for Twin Support Vector
// Machines — from kernel matrices to solved hyperplanes.
//
// 🚀 What is twinsvm?
//
//	A compact, deterministic library implementing the numeric heart of
//	TwinSVM training:
//		• Kernel evaluation: linear, RBF and rectangular (landmark) kernels
//		• clipDCD: a clipped dual coordinate-descent solver for the
//		  box-constrained QP subproblems
//		• Regularized linear solves for hyperplane construction
//		• A trainer assembling the two non-parallel hyperplanes into a
//		  binary classifier
//
// ✨ Why choose twinsvm?
//
//   - Deterministic – fixed coordinate order, bit-identical results per input
//   - Fast – incremental gradient caching keeps each solver pass at O(n²)
//   - Safe – sentinel errors, no panics on user input, feasible α always
//   - Parallel where it is free – kernel rows and the two per-class solves
//
// Everything is organized under four subpackages:
//
//	mat/     — dense row-major matrices, products, ridge-regularized LU solve
//	kernel/  — kernel specifications and similarity-matrix evaluation
//	clipdcd/ — the clipped dual coordinate-descent QP solver
//	tsvm/    — TwinSVM trainer, hyperplane builder and binary classifier
//
// Orchestration layers (multi-class wrappers, model selection, persistence)
// live outside this module: they feed feature matrices in and consume the
// BinaryClassifier value object that comes out.
//
//	go get github.com/tsvmlab/twinsvm
package twinsvm
