package submodular

import (
	"fmt"

	"github.com/arnegrau/ssm/kernel"
)

// NaiveLogdet is a deliberately minimal SubmodularFunction: it caches
// only the solution slice of its last Update and the fval that came of
// it, and recomputes the value from scratch on every Peek and Update
// (Peek stores nothing). Unlike FastIVM, no Cholesky factor survives
// between calls.
//
// It exists as a worked example of implementing SubmodularFunction
// against a cache shape of the caller's own choosing rather than
// FastIVM's incremental factor, grounded on the from-scratch caching
// style of the original Python reference's second log-det
// implementation.
type NaiveLogdet struct {
	kernel kernel.Kernel
	sigma  float64

	cached [][]float64
	fval   float64
}

// NewNaiveLogdet constructs a NaiveLogdet objective over kern with
// regularizer sigma. Returns ErrNilKernel if kern is nil, ErrBadSigma if
// sigma <= 0.
func NewNaiveLogdet(kern kernel.Kernel, sigma float64) (*NaiveLogdet, error) {
	if kern == nil {
		return nil, ErrNilKernel
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("NewNaiveLogdet: sigma=%g: %w", sigma, ErrBadSigma)
	}

	return &NaiveLogdet{kernel: kern, sigma: sigma}, nil
}

// Peek returns f(S with slot pos set to x), recomputed from scratch.
func (m *NaiveLogdet) Peek(S [][]float64, x []float64, pos int) float64 {
	return m.F(candidateSet(S, x, pos))
}

// Update recomputes f(S with slot pos set to x), caches the resulting
// set and fval, and returns the new fval.
func (m *NaiveLogdet) Update(S [][]float64, x []float64, pos int) float64 {
	candidate := candidateSet(S, x, pos)
	m.fval = m.F(candidate)
	m.cached = candidate

	return m.fval
}

// F evaluates f(S) from scratch, independent of any cached state.
func (m *NaiveLogdet) F(S [][]float64) float64 {
	if len(S) == 0 {
		return 0
	}
	M := buildGram(m.kernel.K, m.sigma, S, -1, nil)
	_, fval := choleskyFromGramClamped(M, len(S))

	return fval
}

// Clone returns a deep copy: an independent kernel and a copy of the
// cached solution slice, so mutating the clone never affects the
// receiver.
func (m *NaiveLogdet) Clone() SubmodularFunction {
	return &NaiveLogdet{
		kernel: m.kernel.Clone(),
		sigma:  m.sigma,
		cached: append([][]float64(nil), m.cached...),
		fval:   m.fval,
	}
}

// candidateSet returns S with slot pos set to x, leaving S untouched.
func candidateSet(S [][]float64, x []float64, pos int) [][]float64 {
	n := len(S)
	if pos == n {
		candidate := make([][]float64, n+1)
		copy(candidate, S)
		candidate[n] = x

		return candidate
	}

	candidate := make([][]float64, n)
	copy(candidate, S)
	candidate[pos] = x

	return candidate
}
