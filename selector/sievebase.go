package selector

import (
	"math"
	"sort"

	"github.com/arnegrau/ssm/submodular"
)

// sieveCandidate is one independent candidate solution owned by a sieve-
// family selector (SieveStreaming, SieveStreaming++, Salsa), tied to a
// single threshold guess for OPT (spec §4.7).
type sieveCandidate struct {
	threshold float64
	fn        submodular.SubmodularFunction
	solution  []Item
	fval      float64
}

func newSieveCandidate(v float64, base submodular.SubmodularFunction) *sieveCandidate {
	return &sieveCandidate{threshold: v, fn: base.Clone()}
}

// tryAccept applies the sieve acceptance rule of spec §4.7, generalized
// by divisor so Salsa (§4.9) can reuse it with a different constant per
// regime: accept x if
//
//	delta >= (threshold/divisor - fval) / (k - |S|)
//
// divisor == 2 reproduces the baseline SieveStreaming/SieveStreaming++
// rule. Returns true if x was accepted (and the candidate mutated).
func (c *sieveCandidate) tryAccept(x Item, k int, divisor float64) bool {
	if len(c.solution) >= k {
		return false
	}

	delta := c.fn.Peek(c.solution, x, len(c.solution)) - c.fval
	need := (c.threshold/divisor - c.fval) / float64(k-len(c.solution))
	if delta >= need {
		c.fval = c.fn.Update(c.solution, x, len(c.solution))
		c.solution = append(c.solution, x)

		return true
	}

	return false
}

// sieveGrid owns the set of live sieveCandidates indexed by their
// integer exponent i in the geometric grid v = (1+eps)^i, and keeps a
// sorted slice of live exponents for deterministic iteration order
// (spec §8 determinism / §4.7's "return the sieve with the largest
// fval", ties broken by the smallest surviving exponent).
type sieveGrid struct {
	k    int
	eps  float64
	base submodular.SubmodularFunction

	sieves    map[int]*sieveCandidate
	exponents []int
}

func newSieveGrid(k int, eps float64, base submodular.SubmodularFunction) *sieveGrid {
	return &sieveGrid{k: k, eps: eps, base: base, sieves: make(map[int]*sieveCandidate)}
}

// expand adds any missing sieve for exponents i with lo <= (1+eps)^i <= hi.
// A non-positive lo is a no-op: there is not yet a usable lower bound.
func (g *sieveGrid) expand(lo, hi float64) {
	if lo <= 0 || hi < lo {
		return
	}

	logBase := math.Log(1 + g.eps)
	iLo := int(math.Ceil(math.Log(lo) / logBase))
	iHi := int(math.Floor(math.Log(hi) / logBase))

	var added bool
	for i := iLo; i <= iHi; i++ {
		if _, ok := g.sieves[i]; ok {
			continue
		}
		v := math.Pow(1+g.eps, float64(i))
		g.sieves[i] = newSieveCandidate(v, g.base)
		g.exponents = append(g.exponents, i)
		added = true
	}
	if added {
		sort.Ints(g.exponents)
	}
}

// prune discards every sieve whose threshold is below minThreshold.
func (g *sieveGrid) prune(minThreshold float64) {
	kept := g.exponents[:0]
	for _, i := range g.exponents {
		if g.sieves[i].threshold < minThreshold {
			delete(g.sieves, i)
		} else {
			kept = append(kept, i)
		}
	}
	g.exponents = kept
}

// best returns the live sieve with the largest fval, ties broken by the
// smallest exponent (deterministic iteration order). ok is false if no
// sieve is live yet.
func (g *sieveGrid) best() (c *sieveCandidate, ok bool) {
	bestFval := math.Inf(-1)
	for _, i := range g.exponents {
		cand := g.sieves[i]
		if cand.fval > bestFval {
			bestFval = cand.fval
			c = cand
			ok = true
		}
	}

	return c, ok
}

// numCandidates returns the number of live sieves.
func (g *sieveGrid) numCandidates() int { return len(g.exponents) }

// numElements returns the total number of items stored across all live
// sieves.
func (g *sieveGrid) numElements() int {
	var n int
	for _, i := range g.exponents {
		n += len(g.sieves[i].solution)
	}

	return n
}

// singletonValue returns f({x}) via base.F, which evaluates from scratch
// and ignores cached state, used to maintain the running max-singleton
// estimate m without disturbing any live sieve's cached state.
func singletonValue(base submodular.SubmodularFunction, x Item) float64 {
	return base.F([]Item{x})
}
