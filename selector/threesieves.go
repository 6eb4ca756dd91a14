package selector

import "github.com/arnegrau/ssm/submodular"

// ThreeSievesStrategy governs how a ThreeSieves selector relaxes its
// single threshold after T consecutive rejections (spec §4.10).
type ThreeSievesStrategy int

const (
	// StrategySieve relaxes the threshold by a factor of (1-eps) after
	// T consecutive rejections, mirroring the geometric grid spacing
	// used by the sieve family.
	StrategySieve ThreeSievesStrategy = iota
	// StrategyConstant never relaxes the threshold; T consecutive
	// rejections only reset the rejection counter.
	StrategyConstant
)

// ThreeSieves keeps exactly one candidate solution and one threshold
// guess v, unlike the sieve family's parallel grid of candidates (spec
// §4.10). An item is accepted if its marginal gain clears the threshold
// scaled to the remaining capacity; otherwise a rejection counter r
// increments, and once r reaches T the threshold is relaxed (per
// strategy) and r resets. This trades the sieve family's memory for a
// single pass over candidate thresholds, at the cost of needing T and a
// strategy tuned to the stream.
type ThreeSieves struct {
	k        int
	eps      float64
	t        int
	strategy ThreeSievesStrategy
	fn       submodular.SubmodularFunction
	dim      dimTracker

	v        float64
	r        int
	solution []Item
	fval     float64
}

// NewThreeSieves constructs a ThreeSieves selector with cardinality
// bound k, objective fn, initial threshold guess m, relaxation factor
// eps, rejection budget t, and relaxation strategy. Returns ErrBadK,
// ErrBadM, ErrBadEpsilon, ErrBadT, or ErrNilSubmodularFunction on
// invalid input.
func NewThreeSieves(k int, fn submodular.SubmodularFunction, m, eps float64, t int, strategy ThreeSievesStrategy) (*ThreeSieves, error) {
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
	if t <= 0 {
		return nil, ErrBadT
	}
	if strategy != StrategySieve && strategy != StrategyConstant {
		return nil, ErrUnknownStrategy
	}

	return &ThreeSieves{
		k: k, eps: eps, t: t, strategy: strategy,
		fn: fn.Clone(), v: m,
	}, nil
}

// Next consumes a single item under the single-threshold accept/reject
// rule. A full solution makes Next a no-op: ThreeSieves never replaces
// an accepted element.
func (s *ThreeSieves) Next(x Item) error {
	if err := s.dim.check(x); err != nil {
		return err
	}

	if len(s.solution) >= s.k {
		return nil
	}

	delta := s.fn.Peek(s.solution, x, len(s.solution)) - s.fval
	need := (s.v - s.fval) / float64(s.k-len(s.solution))

	if delta >= need {
		s.fval = s.fn.Update(s.solution, x, len(s.solution))
		s.solution = append(s.solution, x)
		s.r = 0

		return nil
	}

	s.r++
	if s.r >= s.t {
		if s.strategy == StrategySieve {
			s.v *= 1 - s.eps
		}
		s.r = 0
	}

	return nil
}

// Fit consumes batch in order via Next.
func (s *ThreeSieves) Fit(batch []Item) error {
	for _, x := range batch {
		if err := s.Next(x); err != nil {
			return err
		}
	}

	return nil
}

// Solution returns the current solution in acceptance order.
func (s *ThreeSieves) Solution() []Item { return s.solution }

// FVal returns the cached f(S).
func (s *ThreeSieves) FVal() float64 { return s.fval }

// NumCandidateSolutions always returns 1.
func (s *ThreeSieves) NumCandidateSolutions() int { return 1 }

// NumElementsStored returns len(Solution()).
func (s *ThreeSieves) NumElementsStored() int { return len(s.solution) }
