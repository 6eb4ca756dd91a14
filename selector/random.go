package selector

import (
	"math/rand"

	"github.com/arnegrau/ssm/submodular"
)

// Random implements reservoir sampling of size K over the objective fn
// (spec §4.5). The i-th arriving item (0-indexed) is appended while
// |S| < K; afterward it replaces a uniformly chosen slot with
// probability K/(i+1). The PRNG is seeded explicitly at construction, so
// two Random selectors built with the same seed and fed the same stream
// produce bit-identical solutions (spec §8 invariant 8).
type Random struct {
	k   int
	fn  submodular.SubmodularFunction
	rng *rand.Rand
	dim dimTracker

	solution []Item
	fval     float64
	seen     int
}

// NewRandom constructs a Random selector with cardinality bound k, using
// fn as its (sole) objective and seed to initialize its local PRNG.
// Returns ErrBadK if k <= 0, ErrNilSubmodularFunction if fn is nil.
func NewRandom(k int, fn submodular.SubmodularFunction, seed int64) (*Random, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilSubmodularFunction
	}

	return &Random{k: k, fn: fn, rng: rand.New(rand.NewSource(seed))}, nil
}

// Next consumes a single item under the reservoir rule.
func (r *Random) Next(x Item) error {
	if err := r.dim.check(x); err != nil {
		return err
	}

	i := r.seen
	r.seen++

	if len(r.solution) < r.k {
		r.fval = r.fn.Update(r.solution, x, len(r.solution))
		r.solution = append(r.solution, x)

		return nil
	}

	if r.rng.Float64() < float64(r.k)/float64(i+1) {
		j := r.rng.Intn(r.k)
		r.fval = r.fn.Update(r.solution, x, j)
		r.solution[j] = x
	}

	return nil
}

// Fit consumes batch in order via Next.
func (r *Random) Fit(batch []Item) error {
	for _, x := range batch {
		if err := r.Next(x); err != nil {
			return err
		}
	}

	return nil
}

// Solution returns the current reservoir contents in slot order.
func (r *Random) Solution() []Item { return r.solution }

// FVal returns the cached f(S).
func (r *Random) FVal() float64 { return r.fval }

// NumCandidateSolutions always returns 1.
func (r *Random) NumCandidateSolutions() int { return 1 }

// NumElementsStored returns len(Solution()).
func (r *Random) NumElementsStored() int { return len(r.solution) }
