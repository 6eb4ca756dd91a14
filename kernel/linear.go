package kernel

// LinearKernel is the dot-product kernel k(x, y) = <x, y> / d, the "poly
// kernel" of the original reference implementation (tests/main.py's
// PolyKernel / poly_kernel). It is rank-deficient in the sense that its
// Gram matrix has rank <= d regardless of how many items are selected,
// which is exactly what Scenario B (spec §8) exercises.
type LinearKernel struct{}

// NewLinearKernel constructs a LinearKernel. It has no parameters to
// validate.
func NewLinearKernel() *LinearKernel { return &LinearKernel{} }

// K returns <x, y> / len(x). When lengths differ, only the shared prefix
// enters the dot product (unlike RBFKernel.K, which also counts the
// longer vector's extra terms); callers are expected to validate
// dimensions upstream.
func (LinearKernel) K(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += x[i] * y[i]
	}

	return dot / float64(len(x))
}

// Clone returns the receiver: LinearKernel is stateless.
func (l LinearKernel) Clone() Kernel { return l }
