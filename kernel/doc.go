// Package kernel evaluates similarity matrices for TwinSVM training:
// linear, RBF (Gaussian) and rectangular (landmark-subset) kernels.
//
// ✨ Key properties:
//   - Pure: Compute is a function of its inputs and the immutable Spec —
//     no shared kernel-parameter state anywhere in the process.
//   - Deterministic: landmark selection is driven by an explicit strategy
//     and seed, so a rectangular Spec always yields the same reduced basis
//     (the basis changes the QP dimensionality downstream, so this matters).
//   - Guarded: RBF values that underflow toward denormals clamp to exactly 0.
//   - Parallel: output rows are independent, so Compute splits them across
//     goroutines (conc.WaitGroup) with no synchronization beyond the join.
//
// ⚙️ Usage:
//
//	spec := kernel.Spec{Kind: kernel.RBF, Gamma: 0.5}
//	k, err := kernel.Compute(samplesA, basis, spec)
//
// Complexity: O(rows(a) · rows(b) · width) time, O(rows(a) · rows(b)) memory.
package kernel
