package selector

import "github.com/arnegrau/ssm/submodular"

// SieveStreaming maintains an adaptive grid of O(log(2K)/eps) parallel
// candidate solutions ("sieves"), one per guess at OPT along the
// geometric grid v = (1+eps)^i, m <= v <= 2*K*m (spec §4.7). m starts at
// the caller-supplied initial bound and is thereafter the running max
// observed singleton value f({x}).
//
// Approximation ratio: (1/2 - eps) of the offline optimum.
type SieveStreaming struct {
	k    int
	eps  float64
	base submodular.SubmodularFunction
	dim  dimTracker

	m    float64
	grid *sieveGrid
}

// NewSieveStreaming constructs a SieveStreaming selector. m is the
// initial (possibly coarse) upper bound on the maximum singleton value;
// it is refined as a running max as items arrive. Returns ErrBadK,
// ErrBadEpsilon, ErrBadM, or ErrNilSubmodularFunction on invalid input.
func NewSieveStreaming(k int, fn submodular.SubmodularFunction, m, eps float64) (*SieveStreaming, error) {
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

	s := &SieveStreaming{k: k, eps: eps, base: fn, m: m}
	s.grid = newSieveGrid(k, eps, fn)
	s.grid.expand(m, 2*float64(k)*m)

	return s, nil
}

// Next consumes a single item: refreshes the threshold grid against the
// running max singleton value, prunes sieves that have fallen below
// m/2, then offers x to every live, not-yet-full sieve.
func (s *SieveStreaming) Next(x Item) error {
	if err := s.dim.check(x); err != nil {
		return err
	}

	if sg := singletonValue(s.base, x); sg > s.m {
		s.m = sg
	}
	s.grid.expand(s.m, 2*float64(s.k)*s.m)
	s.grid.prune(s.m / 2)

	for _, i := range s.grid.exponents {
		s.grid.sieves[i].tryAccept(x, s.k, 2.0)
	}

	return nil
}

// Fit consumes batch in order via Next.
func (s *SieveStreaming) Fit(batch []Item) error {
	for _, x := range batch {
		if err := s.Next(x); err != nil {
			return err
		}
	}

	return nil
}

// Solution returns the live sieve with the largest fval's solution, or
// nil if no sieve has accepted anything yet.
func (s *SieveStreaming) Solution() []Item {
	if c, ok := s.grid.best(); ok {
		return c.solution
	}

	return nil
}

// FVal returns the live sieve with the largest fval, or 0 if none.
func (s *SieveStreaming) FVal() float64 {
	if c, ok := s.grid.best(); ok {
		return c.fval
	}

	return 0
}

// NumCandidateSolutions returns the number of live sieves.
func (s *SieveStreaming) NumCandidateSolutions() int { return s.grid.numCandidates() }

// NumElementsStored returns the total items stored across all live sieves.
func (s *SieveStreaming) NumElementsStored() int { return s.grid.numElements() }
