// Package tsvm trains binary Twin Support Vector Machine classifiers: two
// non-parallel hyperplanes, one fitted close to each class, instead of a
// single separating hyperplane.
//
// 🚀 How training works:
//
//	samplesA, samplesB ──► kernel matrices against a shared basis
//	                  ──► two class-specific subproblems
//	                        • Standard:     box-constrained dual QPs solved
//	                          by clipdcd, then one regularized linear solve
//	                        • LeastSquares: one closed-form regularized
//	                          linear solve per class, no QP at all
//	                  ──► (w₁,b₁), (w₂,b₂) packaged as a BinaryClassifier
//
// The two per-class subproblems only share read-only kernel data, so the
// trainer runs them on parallel goroutines joined once at the end
// (conc.WaitGroup). Each solve owns its dual vector and scratch exclusively.
//
// ✨ Decision rule:
//
//	A point belongs to the class whose hyperplane lies closer, measured by
//	the perpendicular distance |f_k(x)| / ‖w_k‖. Plane 1 is fitted to
//	samplesA and maps to label +1, plane 2 to samplesB and label −1.
//
// ⚙️ Usage:
//
//	opts := tsvm.DefaultOptions()
//	opts.C1, opts.C2 = 2, 2
//	clf, err := tsvm.Train(samplesA, samplesB, kernel.DefaultSpec(), opts)
//	label, err := clf.Decide(x)
//
// Multi-class decomposition (one-vs-one, one-vs-all), model selection and
// persistence are orchestration concerns that live outside this module; they
// consume the BinaryClassifier value object this package produces.
package tsvm
