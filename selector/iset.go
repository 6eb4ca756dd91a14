package selector

import "github.com/arnegrau/ssm/submodular"

// IndependentSetImprovement maintains a solution S with a per-slot
// weight w[j] recording the marginal gain at the time slot j was filled
// (spec §4.6). Once S is full, an arriving item replaces the
// minimum-weight slot only if doing so would more than double that
// slot's recorded weight — a simple, one-candidate online replacement
// rule.
type IndependentSetImprovement struct {
	k   int
	fn  submodular.SubmodularFunction
	dim dimTracker

	solution []Item
	weights  []float64
	fval     float64
}

// NewIndependentSetImprovement constructs a selector with cardinality
// bound k over fn. Returns ErrBadK if k <= 0, ErrNilSubmodularFunction
// if fn is nil.
func NewIndependentSetImprovement(k int, fn submodular.SubmodularFunction) (*IndependentSetImprovement, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilSubmodularFunction
	}

	return &IndependentSetImprovement{k: k, fn: fn}, nil
}

// Next consumes a single item under the append-or-replace-weakest rule.
func (s *IndependentSetImprovement) Next(x Item) error {
	if err := s.dim.check(x); err != nil {
		return err
	}

	if len(s.solution) < s.k {
		gain := s.fn.Peek(s.solution, x, len(s.solution)) - s.fval
		s.fval = s.fn.Update(s.solution, x, len(s.solution))
		s.solution = append(s.solution, x)
		s.weights = append(s.weights, gain)

		return nil
	}

	jStar := argmin(s.weights)
	candidateFVal := s.fn.Peek(s.solution, x, jStar)
	g := candidateFVal - (s.fval - s.weights[jStar])
	if g > 2*s.weights[jStar] {
		s.fval = s.fn.Update(s.solution, x, jStar)
		s.solution[jStar] = x
		s.weights[jStar] = g
	}

	return nil
}

// Fit consumes batch in order via Next.
func (s *IndependentSetImprovement) Fit(batch []Item) error {
	for _, x := range batch {
		if err := s.Next(x); err != nil {
			return err
		}
	}

	return nil
}

// Solution returns the current solution in slot order.
func (s *IndependentSetImprovement) Solution() []Item { return s.solution }

// FVal returns the cached f(S).
func (s *IndependentSetImprovement) FVal() float64 { return s.fval }

// NumCandidateSolutions always returns 1.
func (s *IndependentSetImprovement) NumCandidateSolutions() int { return 1 }

// NumElementsStored returns len(Solution()).
func (s *IndependentSetImprovement) NumElementsStored() int { return len(s.solution) }

// argmin returns the index of the smallest value in w. w must be
// non-empty.
func argmin(w []float64) int {
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] < w[best] {
			best = i
		}
	}

	return best
}
