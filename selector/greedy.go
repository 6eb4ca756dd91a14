package selector

import (
	"math"

	"github.com/arnegrau/ssm/submodular"
)

// Greedy is the batch (1-1/e)-approximation algorithm of spec §4.4: at
// each of up to K rounds, it evaluates every not-yet-chosen item's
// marginal gain and commits the argmax, stopping early if the best
// available gain is non-positive.
//
// Greedy is fundamentally offline — each round scans the whole
// candidate set — so Next merely appends to an internal buffer and the
// batch algorithm is recomputed lazily on the next Solution/FVal/Fit
// call. Ties are broken by earliest index, matching spec §4.4.
type Greedy struct {
	k    int
	base submodular.SubmodularFunction

	seen  []Item
	dim   dimTracker
	dirty bool

	solution []Item
	fval     float64
}

// NewGreedy constructs a Greedy selector with cardinality bound k over
// the given objective. Returns ErrBadK if k <= 0, ErrNilSubmodularFunction
// if fn is nil.
func NewGreedy(k int, fn submodular.SubmodularFunction) (*Greedy, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilSubmodularFunction
	}

	return &Greedy{k: k, base: fn}, nil
}

// Next appends x to the candidate pool. The offline greedy selection is
// recomputed lazily, the next time Solution/FVal is read.
func (g *Greedy) Next(x Item) error {
	if err := g.dim.check(x); err != nil {
		return err
	}
	g.seen = append(g.seen, x)
	g.dirty = true

	return nil
}

// Fit replaces the candidate pool with batch and runs the offline
// greedy algorithm immediately (spec §4.11: "for Greedy, run the
// offline greedy").
func (g *Greedy) Fit(batch []Item) error {
	for _, x := range batch {
		if err := g.dim.check(x); err != nil {
			return err
		}
	}
	g.seen = append([]Item(nil), batch...)
	g.runGreedy()

	return nil
}

// Solution returns the current greedy solution, recomputing it first if
// new items have arrived via Next since the last computation.
func (g *Greedy) Solution() []Item {
	g.ensureFresh()

	return g.solution
}

// FVal returns f(Solution()), recomputing first if necessary.
func (g *Greedy) FVal() float64 {
	g.ensureFresh()

	return g.fval
}

// NumCandidateSolutions always returns 1: Greedy maintains a single
// candidate solution.
func (g *Greedy) NumCandidateSolutions() int { return 1 }

// NumElementsStored returns len(Solution()).
func (g *Greedy) NumElementsStored() int {
	g.ensureFresh()

	return len(g.solution)
}

func (g *Greedy) ensureFresh() {
	if g.dirty {
		g.runGreedy()
	}
}

// runGreedy executes spec §4.4 over g.seen against a fresh clone of the
// pristine base objective, so repeated recomputation (via interleaved
// Next calls) never accumulates stale cached state.
func (g *Greedy) runGreedy() {
	work := g.base.Clone()
	used := make([]bool, len(g.seen))
	solution := make([]Item, 0, g.k)
	var fval float64

	for len(solution) < g.k && len(solution) < len(g.seen) {
		bestIdx := -1
		bestDelta := math.Inf(-1)
		for i, x := range g.seen {
			if used[i] {
				continue
			}
			delta := work.Peek(solution, x, len(solution)) - fval
			if delta > bestDelta {
				bestDelta = delta
				bestIdx = i
			}
		}
		if bestIdx == -1 || bestDelta <= 0 {
			break
		}
		x := g.seen[bestIdx]
		fval = work.Update(solution, x, len(solution))
		solution = append(solution, x)
		used[bestIdx] = true
	}

	g.solution = solution
	g.fval = fval
	g.dirty = false
}
