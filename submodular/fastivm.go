package submodular

import (
	"fmt"
	"math"

	"github.com/arnegrau/ssm/kernel"
)

// FastIVM caches a lower-triangular Cholesky factor L of
// I + sigma^-2*K(S) and maintains it incrementally: appending an item
// (the common case, pos == n) costs O(n^2) via forward substitution;
// replacing an existing slot (pos < n) still requires an O(n^3) rebuild
// of the live n x n block, since an interior change invalidates every
// row below it (spec §4.3).
//
// L is allocated once, sized (K+1) x (K+1): the extra row/column is
// scratch used by append-peek so that a rejected probe never touches
// the live n x n block.
type FastIVM struct {
	kernel kernel.Kernel
	sigma  float64
	k      int // cardinality capacity

	l    [][]float64 // (k+1) x (k+1), only [:n][:n] is live
	n    int
	fval float64

	degenerateEvents int
}

// NewFastIVM constructs a FastIVM with cardinality bound k and
// regularizer sigma. Returns ErrBadCapacity if k <= 0, ErrNilKernel if
// kern is nil, ErrBadSigma if sigma <= 0.
func NewFastIVM(k int, kern kernel.Kernel, sigma float64) (*FastIVM, error) {
	if k <= 0 {
		return nil, fmt.Errorf("NewFastIVM: k=%d: %w", k, ErrBadCapacity)
	}
	if kern == nil {
		return nil, ErrNilKernel
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("NewFastIVM: sigma=%g: %w", sigma, ErrBadSigma)
	}

	l := make([][]float64, k+1)
	for i := range l {
		l[i] = make([]float64, k+1)
	}

	return &FastIVM{kernel: kern, sigma: sigma, k: k, l: l}, nil
}

// Peek returns f(S with slot pos set to x) without mutating the cached
// factor. pos must be in [0, n] for append/in-place probes.
func (m *FastIVM) Peek(S [][]float64, x []float64, pos int) float64 {
	if pos == m.n {
		gain, ok := m.appendGain(S, x)
		if !ok {
			m.degenerateEvents++

			return m.fval
		}

		return m.fval + gain
	}

	return m.replaceEval(S, x, pos)
}

// Update commits the substitution/append described by (x, pos) and
// returns the new fval. A degenerate extension is rejected: the cached
// factor is left untouched, the event is counted, and the current fval
// is returned unchanged (spec §7: "do not corrupt L").
func (m *FastIVM) Update(S [][]float64, x []float64, pos int) float64 {
	if pos == m.n {
		gain, ok := m.appendGain(S, x)
		if !ok {
			m.degenerateEvents++

			return m.fval
		}

		// Commit: l (stored as the scratch row during appendGain) and
		// the new diagonal are already staged in row n; advance n and
		// fold the gain into fval.
		m.n++
		m.fval += gain

		return m.fval
	}

	L, newFval, ok := m.rebuildWithSubstitution(S, x, pos)
	if !ok {
		m.degenerateEvents++

		return m.fval
	}
	m.commitRebuilt(L, newFval)

	return m.fval
}

// F evaluates f(S) from scratch, independent of any cached state. Used
// for correctness checks and for seeding a clone from a solution
// assembled elsewhere.
func (m *FastIVM) F(S [][]float64) float64 {
	if len(S) == 0 {
		return 0
	}
	M := buildGram(m.kernel.K, m.sigma, S, -1, nil)
	_, fval := choleskyFromGramClamped(M, len(S))

	return fval
}

// Clone returns a deep copy: an independent kernel, a copied L, and the
// same n/fval/degenerateEvents. Mutating the clone never affects the
// receiver (spec §8 invariant 5).
func (m *FastIVM) Clone() SubmodularFunction {
	l := make([][]float64, len(m.l))
	for i := range m.l {
		l[i] = append([]float64(nil), m.l[i]...)
	}

	return &FastIVM{
		kernel:           m.kernel.Clone(),
		sigma:            m.sigma,
		k:                m.k,
		l:                l,
		n:                m.n,
		fval:             m.fval,
		degenerateEvents: m.degenerateEvents,
	}
}

// DegenerateEvents returns the number of rejected probes this FastIVM
// has observed (d^2 <= degenEps on an append attempt, or a failed
// refactor on a replace attempt), for diagnostics.
func (m *FastIVM) DegenerateEvents() int { return m.degenerateEvents }

// N returns the number of items currently represented by the cached
// factor.
func (m *FastIVM) N() int { return m.n }

// FVal returns the cached log-det value.
func (m *FastIVM) FVal() float64 { return m.fval }

// appendGain computes the marginal gain of appending x to the current
// n-item solution via forward substitution against the live n x n block
// of L, and — if the extension is non-degenerate — stages the new row
// n of L (row n, columns 0..n-1, plus diagonal n,n) so that Update can
// commit it without recomputation. Returns ok=false on degeneracy,
// leaving L entirely untouched.
func (m *FastIVM) appendGain(S [][]float64, x []float64) (gain float64, ok bool) {
	n := m.n
	invSigma2 := 1.0 / (m.sigma * m.sigma)

	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = m.kernel.K(S[i], x) * invSigma2
	}

	lRow := forwardSubstitute(m.l, n, v)
	d2 := 1.0 + m.kernel.K(x, x)*invSigma2 - normSq(lRow)
	if d2 <= degenEps {
		return 0, false
	}

	// Stage row n into the scratch row/column so Update can commit
	// in O(1) beyond this call; Peek simply discards it by never
	// advancing n.
	for i := 0; i < n; i++ {
		m.l[n][i] = lRow[i]
	}
	d := math.Sqrt(d2)
	m.l[n][n] = d

	return math.Log(d), true
}

// replaceEval computes f(S with slot pos set to x) via a full O(n^3)
// rebuild, without committing it.
func (m *FastIVM) replaceEval(S [][]float64, x []float64, pos int) float64 {
	_, fval, ok := m.rebuildWithSubstitution(S, x, pos)
	if !ok {
		m.degenerateEvents++

		return m.fval
	}

	return fval
}

// rebuildWithSubstitution reconstructs the n x n Gram matrix of the
// current solution with slot pos replaced by x, and refactors it from
// scratch.
func (m *FastIVM) rebuildWithSubstitution(S [][]float64, x []float64, pos int) (L [][]float64, fval float64, ok bool) {
	n := m.n
	M := buildGram(m.kernel.K, m.sigma, S, pos, x)

	return choleskyFromGram(M, n)
}

// commitRebuilt copies a freshly rebuilt n x n factor into the live
// block of L and updates fval.
func (m *FastIVM) commitRebuilt(L [][]float64, fval float64) {
	n := m.n
	for i := 0; i < n; i++ {
		copy(m.l[i][:n], L[i])
	}
	m.fval = fval
}
