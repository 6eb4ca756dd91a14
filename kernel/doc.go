// Package kernel defines the pluggable similarity function used by the
// submodular package to build a Gram matrix over a stream of feature
// vectors.
//
// A Kernel is a single pure operation k(x, y) → ℝ, expected (but not
// checked, see spec §4.1) to be symmetric positive semi-definite:
//
//	k(x, y) == k(y, x)
//	Gram(X) ⪰ 0 for any finite X
//
// Built-in kernels:
//
//   - RBFKernel  — Gaussian/RBF kernel, k(x,y) = scale * exp(-||x-y||²/sigma²).
//   - LinearKernel — dot-product kernel, k(x,y) = <x,y>/d (the "poly kernel"
//     of the original reference implementation).
//   - Func — adapts a plain Go function into a Kernel, for callers who have
//     neither state nor a Clone method to write.
//
// All three are safe for concurrent read-only use; Clone exists because
// sieve-family selectors (package selector) replicate the owning
// SubmodularFunction, kernel included, once per live threshold.
package kernel
