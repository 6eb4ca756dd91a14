package submodular

import (
	"fmt"

	"github.com/arnegrau/ssm/kernel"
)

// IVM is the reference, non-incremental Informative Vector Machine
// objective: every Peek/Update/F call rebuilds the full Gram matrix and
// refactors it from scratch. O(n^3) per call, where n = len(S). Prefer
// FastIVM for anything beyond small n or correctness-checking use
// (spec §4.3: "a naive recomputation is O(|S|^3) per probe and is the
// bottleneck").
type IVM struct {
	kernel kernel.Kernel
	sigma  float64
	k      int // advisory capacity; IVM itself does not allocate on it
	fval   float64
}

// NewIVM constructs an IVM objective. k is the cardinality bound this
// instance is intended to be used under (advisory only — IVM performs no
// capacity-based allocation); sigma is the regularizer, sigma > 0.
func NewIVM(k int, kern kernel.Kernel, sigma float64) (*IVM, error) {
	if k <= 0 {
		return nil, fmt.Errorf("NewIVM: k=%d: %w", k, ErrBadCapacity)
	}
	if kern == nil {
		return nil, ErrNilKernel
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("NewIVM: sigma=%g: %w", sigma, ErrBadSigma)
	}

	return &IVM{kernel: kern, sigma: sigma, k: k}, nil
}

// Peek returns f(S with slot pos set to x), recomputed from scratch.
func (m *IVM) Peek(S [][]float64, x []float64, pos int) float64 {
	return m.evaluate(S, x, pos)
}

// Update recomputes f(S with slot pos set to x) and caches it as the
// receiver's current fval; the caller remains responsible for actually
// mutating its own S slice.
func (m *IVM) Update(S [][]float64, x []float64, pos int) float64 {
	m.fval = m.evaluate(S, x, pos)

	return m.fval
}

// F evaluates f(S) from scratch, ignoring any cached fval.
func (m *IVM) F(S [][]float64) float64 {
	if len(S) == 0 {
		return 0
	}
	M := buildGram(m.kernel.K, m.sigma, S, -1, nil)
	_, fval := choleskyFromGramClamped(M, len(S))

	return fval
}

// Clone returns a deep copy: a cloned kernel and the cached fval, but no
// shared mutable state with the receiver.
func (m *IVM) Clone() SubmodularFunction {
	return &IVM{kernel: m.kernel.Clone(), sigma: m.sigma, k: m.k, fval: m.fval}
}

// evaluate builds the candidate solution (S with slot pos set to x) and
// returns its from-scratch log-det value.
func (m *IVM) evaluate(S [][]float64, x []float64, pos int) float64 {
	return m.F(candidateSet(S, x, pos))
}
