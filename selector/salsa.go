package selector

import "github.com/arnegrau/ssm/submodular"

// Salsa reuses the SieveStreaming threshold grid (spec §4.9) but routes
// each item's acceptance test through a per-sieve regime chosen from the
// item's singleton value sg relative to that sieve's own threshold v:
//
//	sg >= v            high-value regime, divisor 1   (strictest bar)
//	v/(2K) <= sg < v    dense regime,      divisor 2   (baseline rule)
//	sg < v/(2K)         low-value regime,  divisor 2K  (permissive)
//
// The divisor scales the threshold term of the acceptance bar
// (threshold/divisor - fval) / (K - |S|): divisor 1 keeps the full
// threshold and so demands the largest gain, while divisor 2K lowers it
// the most.
type Salsa struct {
	k    int
	eps  float64
	base submodular.SubmodularFunction
	dim  dimTracker

	m    float64
	grid *sieveGrid
}

// NewSalsa constructs a Salsa selector; parameters and error conditions
// match NewSieveStreaming.
func NewSalsa(k int, fn submodular.SubmodularFunction, m, eps float64) (*Salsa, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilSubmodularFunction
	}
	if err := validateEpsilon(eps); err != nil {
		return nil, err
	}
	if err := validateM(m); err != nil {
		return nil, err
	}

	s := &Salsa{k: k, eps: eps, base: fn, m: m}
	s.grid = newSieveGrid(k, eps, fn)
	s.grid.expand(m, 2*float64(k)*m)

	return s, nil
}

// Next consumes a single item: refreshes the grid exactly as
// SieveStreaming does, then offers x to every live sieve under that
// sieve's own regime-selected divisor.
func (s *Salsa) Next(x Item) error {
	if err := s.dim.check(x); err != nil {
		return err
	}

	sg := singletonValue(s.base, x)
	if sg > s.m {
		s.m = sg
	}
	s.grid.expand(s.m, 2*float64(s.k)*s.m)
	s.grid.prune(s.m / 2)

	for _, i := range s.grid.exponents {
		c := s.grid.sieves[i]
		c.tryAccept(x, s.k, salsaDivisor(sg, c.threshold, s.k))
	}

	return nil
}

// salsaDivisor picks the acceptance divisor for a sieve with the given
// threshold, given the arriving item's singleton value.
func salsaDivisor(sg, threshold float64, k int) float64 {
	switch {
	case sg >= threshold:
		return 1.0
	case sg >= threshold/(2*float64(k)):
		return 2.0
	default:
		return 2 * float64(k)
	}
}

// Fit consumes batch in order via Next.
func (s *Salsa) Fit(batch []Item) error {
	for _, x := range batch {
		if err := s.Next(x); err != nil {
			return err
		}
	}

	return nil
}

// Solution returns the live sieve with the largest fval's solution, or
// nil if none has accepted anything yet.
func (s *Salsa) Solution() []Item {
	if c, ok := s.grid.best(); ok {
		return c.solution
	}

	return nil
}

// FVal returns the live sieve with the largest fval, or 0 if none.
func (s *Salsa) FVal() float64 {
	if c, ok := s.grid.best(); ok {
		return c.fval
	}

	return 0
}

// NumCandidateSolutions returns the number of live sieves.
func (s *Salsa) NumCandidateSolutions() int { return s.grid.numCandidates() }

// NumElementsStored returns the total items stored across all live sieves.
func (s *Salsa) NumElementsStored() int { return s.grid.numElements() }
