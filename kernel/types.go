package kernel

// Kernel is a symmetric positive semi-definite similarity function over
// fixed-dimension real vectors. Implementations must be side-effect free
// in K (no I/O, no shared mutable state) and must support Clone so that
// owners holding cached state (see RBFKernel's none, or a user-defined
// kernel's own cache) can be safely replicated.
//
// Correctness of any downstream log-determinant objective requires k to
// be PSD; this package does not and cannot verify that for user-supplied
// kernels (spec §4.1).
type Kernel interface {
	// K returns k(x, y). x and y must have equal length; on a mismatch
	// implementations should return a finite value and let the caller
	// detect the mismatch rather than panic or return pos/neg infinities
	// or NaNs, which would silently corrupt the Cholesky factor built on
	// top of it. The built-in kernels fall back to the shared prefix (see
	// RBFKernel.K and LinearKernel.K).
	K(x, y []float64) float64

	// Clone returns a deep copy of the kernel, independent of the
	// receiver's internal state (if any).
	Clone() Kernel
}

// Func adapts a plain similarity function into a Kernel. It is stateless,
// so Clone returns the receiver unchanged — safe because a Func value
// carries no mutable state of its own, mirroring the bare poly_kernel
// function the original reference implementation passes directly to
// FastIVM alongside its class-based PolyKernel.
type Func func(x, y []float64) float64

// K calls the wrapped function.
func (f Func) K(x, y []float64) float64 { return f(x, y) }

// Clone returns f itself: a Func value has no state to duplicate.
func (f Func) Clone() Kernel { return f }
